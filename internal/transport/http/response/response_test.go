package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, HTTPStatus(CodeOK))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(CodeBadRequest))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(CodeUnauthorized))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(CodeNotFound))
	assert.Equal(t, http.StatusTooManyRequests, HTTPStatus(CodeTooManyRequests))
	// 未登记的 code 一律 500
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(418))
}

func TestError_DefaultAndCustomMsg(t *testing.T) {
	assert.Equal(t, "Not Found", Error(CodeNotFound, "").Msg)
	assert.Equal(t, "job not found", Error(CodeNotFound, "job not found").Msg)
}

func TestOK_DataNeverNull(t *testing.T) {
	r := OK(nil)
	assert.Equal(t, CodeOK, r.Code)
	assert.NotNil(t, r.Data)
}
