package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/backoffice/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(handler gin.HandlerFunc) (*httptest.ResponseRecorder, Response) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)

	var body Response
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestSuccess(t *testing.T) {
	w, body := perform(func(c *gin.Context) { Success(c, gin.H{"id": 1}) })
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, body.Code)
	assert.Equal(t, "success", body.Message)
}

func TestCreated(t *testing.T) {
	w, body := perform(func(c *gin.Context) { Created(c, gin.H{"id": 1}) })
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 0, body.Code)
}

func TestError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   int
	}{
		{"资源不存在", apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在"), http.StatusNotFound, apperrors.ErrCodeBookNotFound},
		{"库存不足", apperrors.New(apperrors.ErrCodeInsufficientStock, "库存不足"), http.StatusConflict, apperrors.ErrCodeInsufficientStock},
		{"参数错误", apperrors.ErrInvalidParams, http.StatusBadRequest, apperrors.ErrCodeInvalidParams},
		{"未登录", apperrors.ErrUnauthorized, http.StatusUnauthorized, apperrors.ErrCodeUnauthorized},
		{"普通错误", errors.New("boom"), http.StatusInternalServerError, apperrors.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := perform(func(c *gin.Context) { Error(c, tt.err) })
			require.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestError_HidesInternalCause(t *testing.T) {
	err := apperrors.WrapDB(errors.New("dial tcp 10.0.0.1:3306: connection refused"), "查询失败")
	w, body := perform(func(c *gin.Context) { Error(c, err) })

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "查询失败", body.Message)
	assert.NotContains(t, w.Body.String(), "10.0.0.1")
}
