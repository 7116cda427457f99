package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestFailStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		code int
		want int
	}{
		{http.StatusBadRequest, http.StatusBadRequest},
		{http.StatusForbidden, http.StatusForbidden},
		{1001, http.StatusOK},
		{200, http.StatusOK},
	}
	for _, c := range cases {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		Fail(ctx, c.code, "x")
		if w.Code != c.want {
			t.Errorf("Fail(%d) status = %d, want %d", c.code, w.Code, c.want)
		}
		var body Response
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Code != c.code {
			t.Errorf("Fail(%d) body = %s", c.code, w.Body.String())
		}
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Code != 500 {
		t.Fatalf("body = %s", w.Body.String())
	}
}
