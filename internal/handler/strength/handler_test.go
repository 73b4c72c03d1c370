package strength

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/passcheck/internal/middleware"
	strengthService "github.com/jwalitptl/passcheck/internal/service/strength"
	"github.com/jwalitptl/passcheck/pkg/generator"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.RegisterValidation()
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

type resultBody struct {
	Score       int      `json:"score"`
	Percent     int      `json:"percent"`
	Passed      []string `json:"passed"`
	Failed      []string `json:"failed"`
	Suggestions []string `json:"suggestions"`
	Tier        struct {
		Label string `json:"label"`
		Color string `json:"color"`
	} `json:"tier"`
}

func newEngine() *gin.Engine {
	engine := gin.New()
	h := NewHandler(strengthService.NewService(generator.New()))
	h.RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	newEngine().ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestEvaluate(t *testing.T) {
	w, env := do(t, http.MethodPost, "/api/v1/strength/evaluate", `{"password":"Abcdefgh"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	var res resultBody
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, 3, res.Score)
	assert.Equal(t, 60, res.Percent)
	assert.Equal(t, "Medium", res.Tier.Label)
	assert.Equal(t, "#00C851", res.Tier.Color)
	assert.Equal(t, []string{"length", "uppercase", "lowercase"}, res.Passed)
	assert.Equal(t, []string{"number", "special"}, res.Failed)
	assert.Len(t, res.Suggestions, 2)
}

func TestEvaluateEmptyPassword(t *testing.T) {
	w, env := do(t, http.MethodPost, "/api/v1/strength/evaluate", `{"password":""}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res resultBody
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, "Too Weak", res.Tier.Label)
	assert.Len(t, res.Failed, 5)
}

func TestEvaluateMissingPassword(t *testing.T) {
	w, env := do(t, http.MethodPost, "/api/v1/strength/evaluate", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "password", env.Errors[0].Field)
}

func TestEvaluateMalformedBody(t *testing.T) {
	w, env := do(t, http.MethodPost, "/api/v1/strength/evaluate", `{"password":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request body", env.Message)
}

func TestGenerate(t *testing.T) {
	w, env := do(t, http.MethodPost, "/api/v1/strength/generate", `{"length":24}`)
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Password string     `json:"password"`
		Result   resultBody `json:"result"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Len(t, out.Password, 24)
	assert.Equal(t, 5, out.Result.Score)
	assert.Equal(t, "Very Strong", out.Result.Tier.Label)
}

func TestGenerateDefaultLength(t *testing.T) {
	for _, body := range []string{"", `{}`, `{"length":0}`} {
		w, env := do(t, http.MethodPost, "/api/v1/strength/generate", body)
		require.Equal(t, http.StatusOK, w.Code, body)

		var out struct {
			Password string `json:"password"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &out))
		assert.Len(t, out.Password, generator.DefaultLength, body)
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	for _, body := range []string{`{"length":3}`, `{"length":129}`, `{"length":-1}`} {
		w, env := do(t, http.MethodPost, "/api/v1/strength/generate", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "error", env.Status)
	}
}

func TestRequirements(t *testing.T) {
	w, env := do(t, http.MethodGet, "/api/v1/strength/requirements", "")
	require.Equal(t, http.StatusOK, w.Code)

	var cat struct {
		Requirements []struct {
			Name  string `json:"name"`
			Order int    `json:"order"`
		} `json:"requirements"`
		Tiers []struct {
			MinScore int    `json:"min_score"`
			Label    string `json:"label"`
		} `json:"tiers"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cat))
	require.Len(t, cat.Requirements, 5)
	assert.Equal(t, "length", cat.Requirements[0].Name)
	assert.Equal(t, "special", cat.Requirements[4].Name)
	require.Len(t, cat.Tiers, 5)
	assert.Equal(t, 2, cat.Tiers[1].MinScore)
}
