package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestFail_WritesEnvelopeAndRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Writer.Header().Set("X-Request-ID", "rid-123")

	Fail(c, http.StatusNotFound, ErrCodeNotFound, "question set not found")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != ErrCodeNotFound || resp.Message != "question set not found" || resp.RequestID != "rid-123" {
		t.Fatalf("envelope = %+v", resp)
	}
	if !c.IsAborted() {
		t.Fatalf("fail must abort the handler chain")
	}
}

func TestFail_ServerErrorStillResponds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Fail(c, http.StatusInternalServerError, ErrCodeInternal, "boom")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Code != ErrCodeInternal {
		t.Fatalf("envelope = %q (%v)", w.Body.String(), err)
	}
}

func TestOKAndNoContent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	ok(c, http.StatusOK, gin.H{"hello": "there"})
	if w.Code != http.StatusOK || w.Body.Len() == 0 {
		t.Fatalf("ok: code=%d len=%d", w.Code, w.Body.Len())
	}

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	noContent(c)
	c.Writer.WriteHeaderNow() // flush the pending status; gin's engine does this at request end
	if w.Code != http.StatusNoContent {
		t.Fatalf("noContent: code=%d", w.Code)
	}
}
