package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// statusFor 將 sentinel error 對應到 HTTP 狀態碼
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrConfig),
		errors.Is(err, domain.ErrDefaultCategory):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateCategory),
		errors.Is(err, domain.ErrDuplicateDomain):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logrus.Errorf("❌ [API] %s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// bindJSON 解析並驗證請求；失敗時已寫入 400
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的請求格式"})
		return false
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": describeValidation(err)})
		return false
	}
	return true
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
	}
	return "欄位驗證失敗: " + strings.Join(fields, ", ")
}

// parseDate 空字串回傳零值
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(domain.DateLayout, s)
	return t.UTC()
}
