package rest

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
	"github.com/heartmarshall/incentive-ledger/internal/service/account"
	"github.com/heartmarshall/incentive-ledger/internal/service/ingest"
	"github.com/heartmarshall/incentive-ledger/internal/service/plan"
)

type accountAdmin interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	Provision(ctx context.Context, input account.ProvisionInput) (*domain.Account, error)
	SetGroup(ctx context.Context, id uuid.UUID, group string) (*domain.Account, error)
	List(ctx context.Context, company string) ([]domain.Account, error)
}

type planAdmin interface {
	Search(ctx context.Context, acc *domain.Account, input plan.SearchInput) ([]domain.PlanView, error)
	Stats(ctx context.Context, acc *domain.Account, input plan.StatsInput) (domain.PlanStats, error)
	Leaderboard(ctx context.Context, acc *domain.Account, company string, month int) ([]domain.LeaderboardRow, error)
	Override(ctx context.Context, acc *domain.Account, input plan.OverrideInput) (*plan.OverrideResult, error)
	Reset(ctx context.Context, acc *domain.Account) (plan.ResetResult, error)
}

type planImporter interface {
	Import(ctx context.Context, input ingest.ImportInput) (*ingest.ImportResult, error)
}

type sheetReader interface {
	Read(src io.Reader) ([]domain.RawPlanRow, error)
}

// AdminHandler serves operator endpoints. Routes are mounted behind
// middleware.AdminOnly; services check the role again.
type AdminHandler struct {
	accounts  accountAdmin
	plans     planAdmin
	importer  planImporter
	sheets    sheetReader
	maxUpload int64
	log       *slog.Logger
}

// AdminDeps groups the collaborators of AdminHandler.
type AdminDeps struct {
	Accounts  accountAdmin
	Plans     planAdmin
	Importer  planImporter
	Sheets    sheetReader
	MaxUpload int64
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(deps AdminDeps, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		accounts:  deps.Accounts,
		plans:     deps.Plans,
		importer:  deps.Importer,
		sheets:    deps.Sheets,
		maxUpload: deps.MaxUpload,
		log:       logger.With("handler", "admin"),
	}
}

// SearchPlans handles GET /admin/plans?company=&region=&group=&doctor=&month=.
func (h *AdminHandler) SearchPlans(w http.ResponseWriter, r *http.Request) {
	acc, err := caller(r.Context(), h.accounts)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	month, err := queryInt(r, "month")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	q := r.URL.Query()
	views, err := h.plans.Search(r.Context(), acc, plan.SearchInput{
		Company: q.Get("company"),
		Region:  q.Get("region"),
		Group:   q.Get("group"),
		Doctor:  q.Get("doctor"),
		Month:   month,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanViews(views))
}

// Stats handles GET /admin/stats?company=&region=&month=.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	acc, err := caller(r.Context(), h.accounts)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	month, err := queryInt(r, "month")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	stats, err := h.plans.Stats(r.Context(), acc, plan.StatsInput{
		Company: r.URL.Query().Get("company"),
		Region:  r.URL.Query().Get("region"),
		Month:   month,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse(stats))
}

// Leaderboard handles GET /admin/leaderboard?company=&month=.
func (h *AdminHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	acc, err := caller(r.Context(), h.accounts)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	month, err := queryInt(r, "month")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rows, err := h.plans.Leaderboard(r.Context(), acc, r.URL.Query().Get("company"), month)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLeaderboard(rows))
}

type overrideResponse struct {
	Plan       planResponse       `json:"plan"`
	Settlement settlementResponse `json:"settlement"`
}

// Override handles PUT /admin/plans/{id}/settlement. The multipart form
// carries amount_paid, an optional status and comment, and an optional proof
// file.
func (h *AdminHandler) Override(w http.ResponseWriter, r *http.Request) {
	acc, err := caller(r.Context(), h.accounts)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := parseMultipart(w, r, h.maxUpload); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	amount, err := strconv.ParseInt(strings.TrimSpace(r.FormValue("amount_paid")), 10, 64)
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("amount_paid", "must be an integer"))
		return
	}
	file, err := formFile(r, "file", false)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := plan.OverrideInput{
		PlanID:     id,
		AmountPaid: amount,
		Status:     r.FormValue("status"),
		Comment:    r.FormValue("comment"),
	}
	if file != nil {
		input.FileName = file.Name
		input.ContentType = file.ContentType
		input.File = file.Data
	}

	result, err := h.plans.Override(r.Context(), acc, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, overrideResponse{
		Plan:       toPlanResponse(result.Plan),
		Settlement: toSettlementResponse(result.Settlement),
	})
}

type importResponse struct {
	Inserted int      `json:"inserted"`
	Skipped  int      `json:"skipped"`
	Warnings []string `json:"warnings"`
}

// Import handles POST /admin/plans/import with multipart fields file (xlsx),
// company and an optional month.
func (h *AdminHandler) Import(w http.ResponseWriter, r *http.Request) {
	if _, err := caller(r.Context(), h.accounts); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := parseMultipart(w, r, h.maxUpload); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	file, err := formFile(r, "file", true)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	month := 0
	if v := strings.TrimSpace(r.FormValue("month")); v != "" {
		if month, err = strconv.Atoi(v); err != nil {
			handleError(h.log, w, r, domain.NewValidationError("month", "must be an integer"))
			return
		}
	}

	rows, err := h.sheets.Read(bytes.NewReader(file.Data))
	if err != nil {
		h.log.WarnContext(r.Context(), "unreadable spreadsheet", slog.String("error", err.Error()))
		handleError(h.log, w, r, domain.NewValidationError("file", "unreadable spreadsheet"))
		return
	}

	result, err := h.importer.Import(r.Context(), ingest.ImportInput{
		Company: r.FormValue("company"),
		Month:   month,
		Rows:    rows,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	warnings := result.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	writeJSON(w, http.StatusCreated, importResponse{
		Inserted: result.Inserted,
		Skipped:  result.Skipped,
		Warnings: warnings,
	})
}

// Reset handles DELETE /admin/plans.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	acc, err := caller(r.Context(), h.accounts)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.plans.Reset(r.Context(), acc)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{
		"settlements_deleted": result.Settlements,
		"plans_deleted":       result.Plans,
	})
}

// ListAccounts handles GET /admin/accounts?company=.
func (h *AdminHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accounts.List(r.Context(), r.URL.Query().Get("company"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]accountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, toAccountResponse(&accounts[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

type createAccountRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Regions     string `json:"regions"`
	GroupAccess string `json:"group_access"`
}

// CreateAccount handles POST /admin/accounts. Regions is a comma separated
// list in any supported spelling.
func (h *AdminHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	acc, err := h.accounts.Provision(r.Context(), account.ProvisionInput{
		Email:       req.Email,
		Password:    req.Password,
		Role:        domain.Role(strings.ToLower(strings.TrimSpace(req.Role))),
		Company:     req.Company,
		Regions:     req.Regions,
		GroupAccess: req.GroupAccess,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAccountResponse(acc))
}

type setGroupRequest struct {
	GroupAccess string `json:"group_access"`
}

// SetGroup handles PATCH /admin/accounts/{id}/group.
func (h *AdminHandler) SetGroup(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req setGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	acc, err := h.accounts.SetGroup(r.Context(), id, req.GroupAccess)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(acc))
}
