package sitemeta_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sitemeta/sitemeta"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := sitemeta.Errorf(sitemeta.ENOTFOUND, "route %q not found", "/json-formatter")

	assert.Equal(t, sitemeta.ENOTFOUND, sitemeta.ErrorCode(err))
	assert.Equal(t, "route \"/json-formatter\" not found", sitemeta.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sitemeta.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, sitemeta.EINTERNAL, sitemeta.ErrorCode(errors.New("boom")))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading catalog: %w", sitemeta.Errorf(sitemeta.EINVALID, "duplicate href"))

	assert.Equal(t, sitemeta.EINVALID, sitemeta.ErrorCode(err))
	assert.Equal(t, "duplicate href", sitemeta.ErrorMessage(err))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sitemeta.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", sitemeta.ErrorMessage(errors.New("boom")))
}
