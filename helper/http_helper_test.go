package helper

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Brahim-Amzil/3arida-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestUnderscore(t *testing.T) {
	cases := map[string]string{
		"TargetSignatures": "target_signatures",
		"SignerPhone":      "signer_phone",
		"Title":            "title",
		"email":            "email",
	}
	for in, want := range cases {
		assert.Equal(t, want, Underscore(in))
	}
}

func TestValidateRequest(t *testing.T) {
	h := NewHTTPHelper()

	valid := models.SignPetitionRequest{
		PetitionID:  1,
		SignerName:  "Amina Benali",
		SignerPhone: "+212612345678",
	}
	assert.Nil(t, h.ValidateRequest(valid))

	invalid := models.SignPetitionRequest{PetitionID: 1, SignerPhone: "0612345678"}
	errs := h.ValidateRequest(invalid)
	require.NotEmpty(t, errs)

	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}
	assert.True(t, fields["signer_name"])
	assert.True(t, fields["signer_phone"])
}

func TestSendBusinessErrorMapping(t *testing.T) {
	h := NewHTTPHelper()

	cases := []struct {
		err  error
		code int
	}{
		{models.ErrPetitionNotFound, http.StatusNotFound},
		{models.ErrUnauthorizedStats, http.StatusForbidden},
		{models.ErrAlreadySigned, http.StatusBadRequest},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		h.SendBusinessError(c, tc.err)
		assert.Equal(t, tc.code, w.Code, "%v", tc.err)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
	}
}

func TestGeneratePaging(t *testing.T) {
	h := NewHTTPHelper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "http://example.com/api/v1/petitions?page=2&limit=10", nil)

	paging := h.GeneratePaging(c, 10, 2, 35)

	assert.Equal(t, int64(35), paging["total_records"])
	assert.Equal(t, 4, paging["total_pages"])
	assert.Equal(t, 2, paging["current_page"])

	links := paging["links"].(map[string]interface{})
	assert.Contains(t, links["previous"], "page=1")
	assert.Contains(t, links["next"], "page=3")
	assert.Contains(t, links["last"], "page=4")
}
