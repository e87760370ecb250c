package respond

// TODO: Remove from here.
import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/luikyv/go-authres/internal/storage"
	"github.com/luikyv/go-authres/pkg/authres"
)

const (
	TestHost              string = "https://example.com"
	TestErrorURL          string = "https://example.com/error"
	TestErrorURLParam     string = "id"
	TestClientID          string = "test_client_id"
	TestClientRedirectURI string = "https://example.com/callback"
)

var TestNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func NewTestContext(t *testing.T) *Context {
	config := Configuration{
		ErrorContextManager: storage.NewErrorContextManager(10),
		ErrorURL:            TestErrorURL,
		ErrorURLParam:       TestErrorURLParam,
		NowFunc: func() time.Time {
			return TestNow
		},
	}
	ctx := Context{
		Configuration: &config,
		Request:       httptest.NewRequest(http.MethodGet, "/authorize", nil),
		Response:      httptest.NewRecorder(),
	}

	return &ctx
}

func ErrorContexts(_ *testing.T, ctx *Context) []authres.ErrorContext {
	manager, _ := ctx.ErrorContextManager.(*storage.ErrorContextManager)
	ecs := make([]authres.ErrorContext, 0, len(manager.ErrorContexts))
	for _, ec := range manager.ErrorContexts {
		ecs = append(ecs, ec)
	}

	return ecs
}
