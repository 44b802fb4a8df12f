package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Felix-Hz/cofr/internal/domain/entity"
)

func TestCollector_RecordAndScrape(t *testing.T) {
	collector := NewCollector()

	collector.RecordLoginSuccess(entity.ProviderTypeTelegram)
	collector.RecordLoginSuccess(entity.ProviderTypeTelegram)
	collector.RecordLoginFailure(entity.ProviderTypeGoogle, "oauth_exchange_failed")
	collector.RecordAccountCreated()
	collector.RecordLinkCreated(entity.ProviderTypeGithub)
	collector.RecordLinkRemoved(entity.ProviderTypeGithub)
	collector.RecordHTTPStatus(200)
	collector.RecordRequestLatency(42 * time.Millisecond)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/metrics", nil)
	collector.Handler().ServeHTTP(recorder, request)

	require.Equal(t, 200, recorder.Code)
	body := recorder.Body.String()

	assert.Contains(t, body, `cofr_login_success_total{provider="telegram"} 2`)
	assert.Contains(t, body, `cofr_login_failure_total{provider="google",reason="oauth_exchange_failed"} 1`)
	assert.Contains(t, body, `cofr_accounts_created_total 1`)
	assert.Contains(t, body, `cofr_links_created_total{provider="github"} 1`)
	assert.Contains(t, body, `cofr_links_removed_total{provider="github"} 1`)
	assert.Contains(t, body, `cofr_http_status_total{status_code="200"} 1`)
	assert.Contains(t, body, "cofr_http_request_latency_seconds_count 1")
}
