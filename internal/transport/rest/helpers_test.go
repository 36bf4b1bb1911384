package rest

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
	"github.com/heartmarshall/incentive-ledger/pkg/ctxutil"
)

//go:generate moq -out auth_service_mock_test.go -pkg rest . authService
//go:generate moq -out account_lookup_mock_test.go -pkg rest . accountLookup
//go:generate moq -out plan_lister_mock_test.go -pkg rest . planLister
//go:generate moq -out proof_verifier_mock_test.go -pkg rest . proofVerifier
//go:generate moq -out account_admin_mock_test.go -pkg rest . accountAdmin
//go:generate moq -out plan_admin_mock_test.go -pkg rest . planAdmin
//go:generate moq -out plan_importer_mock_test.go -pkg rest . planImporter
//go:generate moq -out sheet_reader_mock_test.go -pkg rest . sheetReader

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func managerAccount() *domain.Account {
	return &domain.Account{
		ID:          uuid.New(),
		Email:       "manager@synergy.uz",
		Role:        domain.RoleManager,
		Company:     "Synergy",
		Regions:     []string{domain.RegionSamarqand},
		GroupAccess: "AB",
	}
}

func adminAccount() *domain.Account {
	return &domain.Account{ID: uuid.New(), Email: "admin@ledger.uz", Role: domain.RoleAdmin}
}

// lookupOf resolves exactly acc.
func lookupOf(acc *domain.Account) func(context.Context, uuid.UUID) (*domain.Account, error) {
	return func(_ context.Context, id uuid.UUID) (*domain.Account, error) {
		if id != acc.ID {
			return nil, domain.ErrNotFound
		}
		return acc, nil
	}
}

// asAccount attaches acc to the request the way the auth middleware does.
func asAccount(r *http.Request, acc *domain.Account) *http.Request {
	ctx := ctxutil.WithAccountID(r.Context(), acc.ID)
	ctx = ctxutil.WithRole(ctx, acc.Role.String())
	return r.WithContext(ctx)
}

type filePart struct {
	field, name, contentType string
	data                     []byte
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, files ...filePart) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.name+`"`)
		h.Set("Content-Type", f.contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// serve routes req through a mux so that path values are populated.
func serve(pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}
