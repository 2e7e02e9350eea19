// Package seed holds the static dashboard dataset. The CMS panel is
// read-only; this data stands in for real order history during development.
package seed

import (
	"time"

	"content_factory/internal/domain/entities"
)

func ts(v string) time.Time {
	t, _ := time.Parse(time.RFC3339, v)
	return t
}

var Users = []entities.User{
	{ID: "lead-1", Name: "Sarah Johnson", Email: "sarah@contentfactory.com", Role: entities.RoleContentLead, IsActive: true, JoinedAt: ts("2024-01-15T08:00:00Z")},
	{ID: "worker-1", Name: "Mike Chen", Email: "mike@contentfactory.com", Role: entities.RoleWorker, Specialty: "designer", IsActive: true, JoinedAt: ts("2024-02-01T08:00:00Z")},
	{ID: "worker-2", Name: "Emma Rodriguez", Email: "emma@contentfactory.com", Role: entities.RoleWorker, Specialty: "animator", IsActive: true, JoinedAt: ts("2024-02-05T08:00:00Z")},
	{ID: "worker-3", Name: "David Kim", Email: "david@contentfactory.com", Role: entities.RoleWorker, Specialty: "voice-actor", IsActive: true, JoinedAt: ts("2024-02-10T08:00:00Z")},
	{ID: "reviewer-1", Name: "Alex Thompson", Email: "alex@contentfactory.com", Role: entities.RoleReviewer, IsActive: true, JoinedAt: ts("2024-01-20T08:00:00Z")},
	{ID: "client-1", Name: "Jennifer Walsh", Email: "jen@techstartup.com", Role: entities.RoleClient, IsActive: true, JoinedAt: ts("2024-03-01T08:00:00Z")},
	{ID: "client-2", Name: "Robert Martinez", Email: "robert@brandcorp.com", Role: entities.RoleClient, IsActive: true, JoinedAt: ts("2024-02-20T08:00:00Z")},
}

var Orders = []entities.ProductionOrder{
	{
		ID:          "order-1",
		ClientID:    "client-1",
		ProjectName: "TechStartup Product Launch Video",
		Description: "Motion graphics video announcing a new SaaS product. Modern, clean, professional with tech-forward aesthetic.",
		Deadline:    ts("2024-03-25T23:59:59Z"),
		SelectedServices: []entities.ServiceID{
			entities.ServiceMotionGraphics, entities.ServiceVoiceover, entities.ServiceScriptWriting,
		},
		Status:       entities.OrderStatusInProgress,
		Priority:     "high",
		AssignedLead: "lead-1",
		TotalPrice:   19000,
		Breakdown: entities.PriceBreakdown{
			BasePrice: 16000,
			AddOns:    []entities.AddOnLineItem{{Name: "Static Thumbnails", Price: 3000}},
			Total:     19000,
		},
		IsPaid:    true,
		CreatedAt: ts("2024-03-15T08:00:00Z"),
		UpdatedAt: ts("2024-03-19T09:30:00Z"),
	},
	{
		ID:               "order-2",
		ClientID:         "client-2",
		ProjectName:      "Social Media UGC Campaign",
		Description:      "UGC-style videos for Instagram and TikTok promoting a fitness app. Authentic, energetic vibe.",
		Deadline:         ts("2024-03-30T23:59:59Z"),
		SelectedServices: []entities.ServiceID{entities.ServiceUGCVideo},
		Status:           entities.OrderStatusAwaitingReview,
		Priority:         "medium",
		AssignedLead:     "lead-1",
		TotalPrice:       25000,
		Breakdown: entities.PriceBreakdown{
			BasePrice: 25000,
			AddOns:    []entities.AddOnLineItem{},
			Total:     25000,
		},
		IsPaid:    false,
		CreatedAt: ts("2024-03-12T10:00:00Z"),
		UpdatedAt: ts("2024-03-19T16:45:00Z"),
	},
	{
		ID:               "order-3",
		ClientID:         "client-1",
		ProjectName:      "Website Hero Graphics",
		Description:      "Static graphics for website hero section. Three variations for A/B testing. Modern, minimalist design.",
		Deadline:         ts("2024-03-22T23:59:59Z"),
		SelectedServices: []entities.ServiceID{entities.ServiceStaticGraphic},
		Status:           entities.OrderStatusCompleted,
		Priority:         "low",
		AssignedLead:     "lead-1",
		TotalPrice:       11000,
		Breakdown: entities.PriceBreakdown{
			BasePrice: 5000,
			AddOns:    []entities.AddOnLineItem{{Name: "Extra Variations (3)", Price: 6000}},
			Total:     11000,
		},
		IsPaid:    true,
		CreatedAt: ts("2024-03-10T08:00:00Z"),
		UpdatedAt: ts("2024-03-19T14:30:00Z"),
	},
}

var Comments = []entities.Comment{
	{ID: "comment-1", OrderID: "order-1", UserID: "lead-1", Content: "Great work on the initial concept! @worker-2 can you adjust the color scheme to match the brand guidelines more closely?", Mentions: []string{"worker-2"}, CreatedAt: ts("2024-03-18T15:00:00Z")},
	{ID: "comment-2", OrderID: "order-1", UserID: "worker-2", Content: "Absolutely! I'll update the color palette and have a new version ready by tomorrow.", Mentions: []string{}, CreatedAt: ts("2024-03-18T15:15:00Z")},
	{ID: "comment-3", OrderID: "order-1", UserID: "client-1", Content: "This looks amazing! One small request - can we make the logo 20% larger in the final frame?", Mentions: []string{}, CreatedAt: ts("2024-03-19T09:30:00Z")},
}

var TimelineEvents = []entities.TimelineEvent{
	{ID: "event-1", OrderID: "order-1", Type: "status_change", Description: "Order created and moved to Not Started", UserID: "client-1", CreatedAt: ts("2024-03-15T08:00:00Z")},
	{ID: "event-2", OrderID: "order-1", Type: "assignment", Description: "Assigned to Content Lead Sarah Johnson", UserID: "lead-1", CreatedAt: ts("2024-03-15T09:00:00Z")},
	{ID: "event-3", OrderID: "order-1", Type: "assignment", Description: "Emma Rodriguez assigned as Animator", UserID: "lead-1", CreatedAt: ts("2024-03-15T09:15:00Z")},
	{ID: "event-4", OrderID: "order-1", Type: "status_change", Description: "Status changed to In Progress", UserID: "lead-1", CreatedAt: ts("2024-03-15T10:00:00Z")},
	{ID: "event-5", OrderID: "order-1", Type: "upload", Description: "Brand guidelines uploaded by client", UserID: "client-1", CreatedAt: ts("2024-03-15T10:00:00Z")},
}

var Reviews = []entities.Review{
	{
		ID:          "review-1",
		OrderID:     "order-1",
		ReviewerID:  "reviewer-1",
		ServiceType: entities.ServiceMotionGraphics,
		Status:      "needs-changes",
		Feedback:    "Great concept and execution! Just need to adjust the logo size in the final frame and ensure brand colors are consistent throughout.",
		CriteriaChecks: map[string]bool{
			"brand-compliance":  false,
			"technical-quality": true,
			"messaging-clarity": true,
			"visual-appeal":     true,
		},
		CreatedAt: ts("2024-03-19T11:30:00Z"),
	},
}

var Stats = entities.DashboardStats{
	TotalOrders:           47,
	ActiveOrders:          12,
	CompletedThisMonth:    23,
	AverageCompletionDays: 4.2,
	RevenueThisMonth:      287000,
	TopServices: []entities.TopService{
		{Service: entities.ServiceMotionGraphics, Count: 15, Revenue: 150000},
		{Service: entities.ServiceUGCVideo, Count: 12, Revenue: 120000},
		{Service: entities.ServiceStaticGraphic, Count: 8, Revenue: 40000},
		{Service: entities.ServiceVoiceover, Count: 6, Revenue: 24000},
		{Service: entities.ServiceScriptWriting, Count: 6, Revenue: 12000},
	},
}
