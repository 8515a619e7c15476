package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"xlfilter/domain/core"

	"github.com/stretchr/testify/assert"
)

func TestGetCodeFromDomainErrors(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{core.NewFileOpenError("in.xlsx", stderrors.New("bad zip")), CodeFileOpen},
		{fmt.Errorf("locate: %w", core.ErrUnsupportedLayout), CodeUnsupportedLayout},
		{core.ErrEmptyHeaderSet, CodeEmptyHeaderSet},
		{core.ErrNoSelection, CodeNoSelection},
		{core.NewNoMatchesError("Department", "x"), CodeNoMatches},
		{core.NewFileWriteError("out.xlsx", stderrors.New("disk full")), CodeFileWrite},
		{core.NewInvalidColumnError("Nope"), CodeInvalidColumn},
		{stderrors.New("boom"), CodeInternalError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, GetCode(tt.err), tt.err.Error())
	}
}

func TestWrapKeepsCode(t *testing.T) {
	base := ConfigInvalid("header set is empty")
	wrapped := Wrap(base, "configuration validation failed")

	assert.Equal(t, CodeConfigInvalid, GetCode(wrapped))
	assert.Equal(t, "configuration validation failed: header set is empty", wrapped.Error())
	var appErr *AppError
	assert.True(t, stderrors.As(wrapped, &appErr))
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestWrapDomainError(t *testing.T) {
	wrapped := Wrapf(core.ErrNoMatches, "filter %s", "Department")

	assert.Equal(t, CodeNoMatches, GetCode(wrapped))
	assert.True(t, stderrors.Is(wrapped, core.ErrNoMatches))
}

func TestFromDomain(t *testing.T) {
	appErr := FromDomain(fmt.Errorf("open: %w", core.ErrFileOpen))

	assert.Equal(t, CodeFileOpen, appErr.Code)
	assert.Equal(t, "open: input file cannot be opened", appErr.Message)
	assert.Nil(t, FromDomain(nil))
}
