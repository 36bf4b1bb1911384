package rest

import (
	"time"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

type accountResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Company     string    `json:"company,omitempty"`
	Regions     []string  `json:"regions"`
	GroupAccess string    `json:"group_access,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	regions := a.Regions
	if regions == nil {
		regions = []string{}
	}
	return accountResponse{
		ID:          a.ID.String(),
		Email:       a.Email,
		Role:        a.Role.String(),
		Company:     a.Company,
		Regions:     regions,
		GroupAccess: a.GroupAccess,
		CreatedAt:   a.CreatedAt,
	}
}

type planResponse struct {
	ID           string  `json:"id"`
	Company      string  `json:"company"`
	Region       string  `json:"region"`
	District     string  `json:"district,omitempty"`
	Group        string  `json:"group"`
	Manager      string  `json:"manager,omitempty"`
	DoctorName   string  `json:"doctor_name"`
	Phone        string  `json:"phone,omitempty"`
	Specialty    string  `json:"specialty,omitempty"`
	Workplace    string  `json:"workplace,omitempty"`
	CardNumber   string  `json:"card_number,omitempty"`
	TargetAmount int64   `json:"target_amount"`
	PlannedMode  string  `json:"planned_mode"`
	Currency     string  `json:"currency"`
	Month        int     `json:"month"`
	Status       string  `json:"status"`
	StatusAmount int64   `json:"status_amount"`
	StatusLabel  string  `json:"status_label"`
	AmountPaid   int64   `json:"amount_paid"`
	ProofPath    *string `json:"proof_path,omitempty"`
}

func toPlanResponse(p *domain.PlanRecord) planResponse {
	return planResponse{
		ID:           p.ID.String(),
		Company:      p.Company,
		Region:       p.Region,
		District:     p.District,
		Group:        p.Group,
		Manager:      p.ManagerName,
		DoctorName:   p.DoctorName,
		Phone:        p.Phone,
		Specialty:    p.Specialty,
		Workplace:    p.Workplace,
		CardNumber:   p.CardNumber,
		TargetAmount: p.TargetAmount,
		PlannedMode:  p.PlannedMode.String(),
		Currency:     p.Currency.String(),
		Month:        p.Month,
		Status:       p.Status.Kind.String(),
		StatusAmount: p.Status.Amount,
		StatusLabel:  p.StatusLabel(),
	}
}

func toPlanViews(views []domain.PlanView) []planResponse {
	out := make([]planResponse, 0, len(views))
	for i := range views {
		resp := toPlanResponse(&views[i].PlanRecord)
		resp.AmountPaid = views[i].AmountPaid
		resp.ProofPath = views[i].ProofPath
		out = append(out, resp)
	}
	return out
}

type statsResponse struct {
	TotalDoctors int64 `json:"total_doctors"`
	TotalBudget  int64 `json:"total_budget"`
	TotalPaid    int64 `json:"total_paid"`
	TotalDebt    int64 `json:"total_debt"`
	Pending      int64 `json:"pending"`
	Verified     int64 `json:"verified"`
}

type leaderboardRow struct {
	Region string `json:"region"`
	Group  string `json:"group"`
	Target int64  `json:"target"`
	Paid   int64  `json:"paid"`
	Debt   int64  `json:"debt"`
}

func toLeaderboard(rows []domain.LeaderboardRow) []leaderboardRow {
	out := make([]leaderboardRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, leaderboardRow(r))
	}
	return out
}

type settlementResponse struct {
	ID            string    `json:"id"`
	PlanID        string    `json:"plan_id"`
	AmountPaid    int64     `json:"amount_paid"`
	Mode          string    `json:"mode"`
	ProofPath     *string   `json:"proof_path,omitempty"`
	TransactionID *string   `json:"transaction_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toSettlementResponse(s *domain.Settlement) settlementResponse {
	return settlementResponse{
		ID:            s.ID.String(),
		PlanID:        s.PlanID.String(),
		AmountPaid:    s.AmountPaid,
		Mode:          s.Mode.String(),
		ProofPath:     s.ProofPath,
		TransactionID: s.TransactionID,
		CreatedAt:     s.CreatedAt,
	}
}
