package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
	"github.com/heartmarshall/incentive-ledger/internal/service/verification"
	"github.com/heartmarshall/incentive-ledger/internal/visibility"
)

type planLister interface {
	ListVisible(ctx context.Context, acc *domain.Account, q visibility.Query) ([]domain.PlanView, error)
}

type proofVerifier interface {
	Verify(ctx context.Context, acc *domain.Account, input verification.VerifyInput) (*verification.VerifyResult, error)
}

// PlanHandler serves the manager surface: the visible ledger and proof
// submission.
type PlanHandler struct {
	accounts  accountLookup
	plans     planLister
	verifier  proofVerifier
	maxUpload int64
	log       *slog.Logger
}

// NewPlanHandler creates a PlanHandler.
func NewPlanHandler(accounts accountLookup, plans planLister, verifier proofVerifier, maxUpload int64, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{
		accounts:  accounts,
		plans:     plans,
		verifier:  verifier,
		maxUpload: maxUpload,
		log:       logger.With("handler", "plans"),
	}
}

// List handles GET /plans?month=&doctor=. Admins may add company, region and
// group.
func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
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
	views, err := h.plans.ListVisible(r.Context(), acc, visibility.Query{
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

type verifyResponse struct {
	Outcome      string                  `json:"outcome"`
	Gate         string                  `json:"gate,omitempty"`
	Reason       string                  `json:"reason"`
	ManualReview bool                    `json:"manual_review"`
	AmountPaid   int64                   `json:"amount_paid"`
	SettlementID *string                 `json:"settlement_id,omitempty"`
	ProofPath    string                  `json:"proof_path"`
	Plan         planResponse            `json:"plan"`
	Extraction   domain.ExtractionResult `json:"extraction"`
}

// Verify handles POST /plans/{id}/verify with multipart fields file and
// payment_method.
//
// Accepted submissions answer 200, manual review 202 and gate rejections 422
// with the rejection reason.
func (h *PlanHandler) Verify(w http.ResponseWriter, r *http.Request) {
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
	file, err := formFile(r, "file", true)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.verifier.Verify(r.Context(), acc, verification.VerifyInput{
		PlanID:        id,
		PaymentMethod: r.FormValue("payment_method"),
		FileName:      file.Name,
		ContentType:   file.ContentType,
		File:          file.Data,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := verifyResponse{
		Outcome:      result.Decision.Outcome.String(),
		Gate:         result.Decision.Gate,
		Reason:       result.Decision.Reason,
		ManualReview: result.Decision.Outcome == domain.OutcomeManualReview,
		AmountPaid:   result.Decision.AmountPaid,
		ProofPath:    result.ProofPath,
		Plan:         toPlanResponse(result.Plan),
		Extraction:   result.Extraction,
	}
	if result.SettlementID != nil {
		s := result.SettlementID.String()
		resp.SettlementID = &s
	}

	status := http.StatusOK
	switch result.Decision.Outcome {
	case domain.OutcomeRejected:
		status = http.StatusUnprocessableEntity
	case domain.OutcomeManualReview:
		status = http.StatusAccepted
	}
	writeJSON(w, status, resp)
}
