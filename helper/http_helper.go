package helper

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/Brahim-Amzil/3arida-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	validator "gopkg.in/go-playground/validator.v9"
	entranslations "gopkg.in/go-playground/validator.v9/translations/en"
)

// HTTPHelper shapes every response as {success, data?, error?, errors?} and
// owns request validation.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	v := validator.New()
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		log.Println("validator translations:", err)
	}
	return &HTTPHelper{Validate: v, Translator: trans}
}

// ValidateRequest runs struct validation and returns field-level errors, or
// nil when the payload is valid.
func (u *HTTPHelper) ValidateRequest(i interface{}) []models.ValidationError {
	err := u.Validate.Struct(i)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []models.ValidationError{{Field: "", Message: err.Error(), Code: "invalid"}}
	}

	out := make([]models.ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, models.ValidationError{
			Field:   Underscore(fe.Field()),
			Message: fe.Translate(u.Translator),
			Code:    fe.Tag(),
		})
	}
	return out
}

func (u *HTTPHelper) SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func (u *HTTPHelper) SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}

func (u *HTTPHelper) SendValidationError(c *gin.Context, message string, errs []models.ValidationError) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message, "errors": errs})
}

func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": message})
}

func (u *HTTPHelper) SendForbiddenError(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, gin.H{"success": false, "error": message})
}

func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "error": message})
}

func (u *HTTPHelper) SendInternalServerError(c *gin.Context, err error) {
	log.Println("internal error:", err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
}

// SendBusinessError maps expected rule failures onto their status codes and
// collapses everything else into a 500.
func (u *HTTPHelper) SendBusinessError(c *gin.Context, err error) {
	switch {
	case models.IsNotFound(err):
		u.SendNotFoundError(c, err.Error())
	case models.IsForbidden(err):
		u.SendForbiddenError(c, err.Error())
	case models.IsBusinessError(err):
		u.SendBadRequest(c, err.Error())
	default:
		u.SendInternalServerError(c, err)
	}
}

// get pagination URL
func (u *HTTPHelper) GetPagingUrl(c *gin.Context, page, limit int) string {
	r := c.Request
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	currentURL := scheme + "://" + r.Host + r.URL.Path + "?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
	return currentURL
}

// Set pagination response
func (u *HTTPHelper) GeneratePaging(c *gin.Context, limit, page int, totalRecord int64) map[string]interface{} {
	prevURL, nextURL, firstURL, lastURL := "", "", "", ""

	totalPages := int(math.Ceil(float64(totalRecord) / float64(limit)))

	if totalPages >= page && page > 1 {
		prevURL = u.GetPagingUrl(c, page-1, limit)
		firstURL = u.GetPagingUrl(c, 1, limit)
	}

	if totalPages > page {
		nextURL = u.GetPagingUrl(c, page+1, limit)
	}

	if totalPages >= page && totalPages != page {
		lastURL = u.GetPagingUrl(c, totalPages, limit)
	}

	links := map[string]interface{}{
		"previous": prevURL,
		"next":     nextURL,
		"first":    firstURL,
		"last":     lastURL,
	}

	return map[string]interface{}{
		"total_records": totalRecord,
		"per_page":      limit,
		"current_page":  page,
		"total_pages":   totalPages,
		"links":         links,
	}
}
