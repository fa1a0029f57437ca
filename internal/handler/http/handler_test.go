package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/mock"
	"github.com/MKhiriev/go-journal-vault/internal/service"
	"github.com/MKhiriev/go-journal-vault/models"
	"go.uber.org/mock/gomock"
)

const testToken = "good-token"

type testServices struct {
	auth        *mock.MockAuthService
	wrappedKeys *mock.MockWrappedKeyService
	records     *mock.MockRecordService
	appInfo     *mock.MockAppInfoService
}

func newTestRouter(t *testing.T) (http.Handler, *testServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &testServices{
		auth:        mock.NewMockAuthService(ctrl),
		wrappedKeys: mock.NewMockWrappedKeyService(ctrl),
		records:     mock.NewMockRecordService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:       m.auth,
		WrappedKeyService: m.wrappedKeys,
		RecordService:     m.records,
		AppInfoService:    m.appInfo,
	}, logger.Nop())

	return h.Init(), m
}

// expectOwner makes testToken authenticate as ownerID.
func (m *testServices) expectOwner(ownerID int64) {
	m.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{OwnerID: ownerID}, nil).AnyTimes()
}

func doRequest(router http.Handler, method, path, body string, authed bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
