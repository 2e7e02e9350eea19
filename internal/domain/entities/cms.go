package entities

import "time"

// Read-only dashboard types. The CMS panel renders these over static seed
// data; there is no write path.

type UserRole string

const (
	RoleContentLead UserRole = "content-lead"
	RoleWorker      UserRole = "worker"
	RoleClient      UserRole = "client"
	RoleReviewer    UserRole = "reviewer"
)

type OrderStatus string

const (
	OrderStatusNotStarted     OrderStatus = "not-started"
	OrderStatusInProgress     OrderStatus = "in-progress"
	OrderStatusAwaitingReview OrderStatus = "awaiting-review"
	OrderStatusInReview       OrderStatus = "in-review"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusRedoRequested  OrderStatus = "redo-requested"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	Specialty string    `json:"specialty,omitempty"`
	IsActive  bool      `json:"is_active"`
	JoinedAt  time.Time `json:"joined_at"`
}

// ProductionOrder is a placed order as seen by the dashboard: the submitted
// intake fields plus order management state and the frozen price breakdown
// computed at submission time.

type ProductionOrder struct {
	ID               string         `json:"id"`
	ClientID         string         `json:"client_id"`
	ProjectName      string         `json:"project_name"`
	Description      string         `json:"description"`
	Deadline         time.Time      `json:"deadline"`
	SelectedServices []ServiceID    `json:"selected_services"`
	Status           OrderStatus    `json:"status"`
	Priority         string         `json:"priority"`
	AssignedLead     string         `json:"assigned_lead,omitempty"`
	TotalPrice       int            `json:"total_price"`
	Breakdown        PriceBreakdown `json:"price_breakdown"`
	IsPaid           bool           `json:"is_paid"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type Comment struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	Mentions  []string  `json:"mentions"`
	CreatedAt time.Time `json:"created_at"`
}

type TimelineEvent struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	UserID      string    `json:"user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Review struct {
	ID             string          `json:"id"`
	OrderID        string          `json:"order_id"`
	ReviewerID     string          `json:"reviewer_id"`
	ServiceType    ServiceID       `json:"service_type"`
	Status         string          `json:"status"`
	Feedback       string          `json:"feedback"`
	CriteriaChecks map[string]bool `json:"criteria_checks"`
	CreatedAt      time.Time       `json:"created_at"`
}

type TopService struct {
	Service ServiceID `json:"service"`
	Count   int       `json:"count"`
	Revenue int       `json:"revenue"`
}

type DashboardStats struct {
	TotalOrders           int          `json:"total_orders"`
	ActiveOrders          int          `json:"active_orders"`
	CompletedThisMonth    int          `json:"completed_this_month"`
	AverageCompletionDays float64      `json:"average_completion_days"`
	RevenueThisMonth      int          `json:"revenue_this_month"`
	TopServices           []TopService `json:"top_services"`
}
