package store

import (
	"time"

	"github.com/vidhi3000/project-harmony-main/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

// Seed replaces the collections with the demo dataset used by the demo
// binary and the tests. Returns the store for chaining.
func (s *Store) Seed() *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = []models.User{
		{ID: "1", Name: "John Doe", Email: "john@example.com", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=John", Role: models.RoleAdmin},
		{ID: "2", Name: "Jane Smith", Email: "jane@example.com", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Jane", Role: models.RoleMember},
		{ID: "3", Name: "Bob Johnson", Email: "bob@example.com", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Bob", Role: models.RoleMember},
		{ID: "4", Name: "Alice Cooper", Email: "alice@example.com", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Alice", Role: models.RoleMember},
	}

	s.projects = []models.Project{
		{ID: "p1", Name: "Website Redesign", Description: "Complete overhaul of the company website with new branding", Color: "#6366f1", Icon: "🎨", Status: models.ProjectActive, Progress: 68, TasksCount: 24, CompletedTasks: 16, MemberIDs: []string{"1", "2", "3"}, DueDate: "2024-03-01", CreatedAt: date(2024, time.January, 15), UpdatedAt: date(2024, time.January, 15)},
		{ID: "p2", Name: "Mobile App v2.0", Description: "New features and performance improvements for the mobile application", Color: "#10b981", Icon: "📱", Status: models.ProjectActive, Progress: 42, TasksCount: 36, CompletedTasks: 15, MemberIDs: []string{"2", "3", "4"}, DueDate: "2024-04-15", CreatedAt: date(2024, time.January, 20), UpdatedAt: date(2024, time.January, 20)},
		{ID: "p3", Name: "API Integration", Description: "Third-party API integrations for payment and analytics", Color: "#f59e0b", Icon: "🔗", Status: models.ProjectActive, Progress: 85, TasksCount: 18, CompletedTasks: 15, MemberIDs: []string{"1", "4"}, DueDate: "2024-02-28", CreatedAt: date(2024, time.February, 1), UpdatedAt: date(2024, time.February, 1)},
		{ID: "p4", Name: "Marketing Campaign", Description: "Q1 2024 marketing campaign planning and execution", Color: "#ec4899", Icon: "📢", Status: models.ProjectActive, Progress: 25, TasksCount: 12, CompletedTasks: 3, MemberIDs: []string{"3", "4"}, DueDate: "2024-05-01", CreatedAt: date(2024, time.February, 10), UpdatedAt: date(2024, time.February, 10)},
	}

	s.tasks = []models.Task{
		{ID: "t1", Title: "Design new homepage layout", Description: "Create wireframes and mockups for the new homepage", Status: models.StatusDone, Priority: models.PriorityHigh, ProjectID: "p1", AssigneeID: "2", DueDate: datePtr(2024, time.February, 15), Tags: []string{"design", "ui"}, CreatedAt: date(2024, time.January, 16), UpdatedAt: date(2024, time.February, 10)},
		{ID: "t2", Title: "Implement responsive navigation", Description: "Build mobile-first responsive navigation component", Status: models.StatusInProgress, Priority: models.PriorityHigh, ProjectID: "p1", AssigneeID: "3", DueDate: datePtr(2024, time.February, 20), Tags: []string{"frontend", "mobile"}, CreatedAt: date(2024, time.January, 18), UpdatedAt: date(2024, time.February, 12)},
		{ID: "t3", Title: "Setup CI/CD pipeline", Description: "Configure automated testing and deployment", Status: models.StatusReview, Priority: models.PriorityMedium, ProjectID: "p1", AssigneeID: "1", DueDate: datePtr(2024, time.February, 18), Tags: []string{"devops"}, CreatedAt: date(2024, time.January, 20), UpdatedAt: date(2024, time.February, 14)},
		{ID: "t4", Title: "User authentication flow", Description: "Implement login, signup, and password reset", Status: models.StatusTodo, Priority: models.PriorityUrgent, ProjectID: "p2", AssigneeID: "4", DueDate: datePtr(2024, time.February, 25), Tags: []string{"backend", "security"}, CreatedAt: date(2024, time.January, 22), UpdatedAt: date(2024, time.February, 1)},
		{ID: "t5", Title: "Push notifications", Description: "Integrate Firebase for push notifications", Status: models.StatusBacklog, Priority: models.PriorityMedium, ProjectID: "p2", Tags: []string{"mobile", "backend"}, CreatedAt: date(2024, time.January, 25), UpdatedAt: date(2024, time.January, 25)},
		{ID: "t6", Title: "Payment gateway integration", Description: "Integrate Stripe for payment processing", Status: models.StatusInProgress, Priority: models.PriorityUrgent, ProjectID: "p3", AssigneeID: "1", DueDate: datePtr(2024, time.February, 22), Tags: []string{"backend", "payments"}, CreatedAt: date(2024, time.February, 2), UpdatedAt: date(2024, time.February, 15)},
		{ID: "t7", Title: "Analytics dashboard", Description: "Build analytics overview with charts", Status: models.StatusTodo, Priority: models.PriorityHigh, ProjectID: "p3", AssigneeID: "4", DueDate: datePtr(2024, time.February, 26), Tags: []string{"frontend", "data"}, CreatedAt: date(2024, time.February, 5), UpdatedAt: date(2024, time.February, 10)},
		{ID: "t8", Title: "Create social media assets", Description: "Design graphics for social media campaigns", Status: models.StatusInProgress, Priority: models.PriorityMedium, ProjectID: "p4", AssigneeID: "3", DueDate: datePtr(2024, time.February, 28), Tags: []string{"design", "marketing"}, CreatedAt: date(2024, time.February, 11), UpdatedAt: date(2024, time.February, 16)},
		{ID: "t9", Title: "Write blog content", Description: "Create 5 blog posts for the campaign", Status: models.StatusBacklog, Priority: models.PriorityLow, ProjectID: "p4", Tags: []string{"content", "marketing"}, CreatedAt: date(2024, time.February, 12), UpdatedAt: date(2024, time.February, 12)},
		{ID: "t10", Title: "Performance optimization", Description: "Optimize bundle size and loading speed", Status: models.StatusReview, Priority: models.PriorityHigh, ProjectID: "p1", AssigneeID: "3", DueDate: datePtr(2024, time.February, 19), Tags: []string{"frontend", "performance"}, CreatedAt: date(2024, time.January, 28), UpdatedAt: date(2024, time.February, 16)},
	}

	s.notifications = []models.Notification{
		{ID: "n1", Type: models.NotificationTaskAssigned, Title: "New task assigned", Message: "You have been assigned to \"Payment gateway integration\"", Read: false, CreatedAt: at(2024, time.February, 16, 10, 30), Link: "/board"},
		{ID: "n2", Type: models.NotificationComment, Title: "New comment", Message: "Sarah commented on \"Design new homepage layout\"", Read: false, CreatedAt: at(2024, time.February, 16, 9, 15), Link: "/board"},
		{ID: "n3", Type: models.NotificationDeadline, Title: "Deadline approaching", Message: "\"Implement responsive navigation\" is due in 2 days", Read: true, CreatedAt: at(2024, time.February, 15, 14, 0), Link: "/board"},
		{ID: "n4", Type: models.NotificationProjectUpdate, Title: "Project updated", Message: "Website Redesign progress updated to 68%", Read: true, CreatedAt: at(2024, time.February, 15, 11, 0), Link: "/projects"},
		{ID: "n5", Type: models.NotificationMention, Title: "You were mentioned", Message: "Marcus mentioned you in a comment", Read: true, CreatedAt: at(2024, time.February, 14, 16, 30), Link: "/board"},
	}

	return s
}
