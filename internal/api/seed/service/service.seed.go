// Package services - Seed domain.
package services

import (
	"context"

	authservices "ngo_portal/internal/api/auth/service"
	contentmodels "ngo_portal/internal/api/content/models"
	contentservices "ngo_portal/internal/api/content/service"
	donationmodels "ngo_portal/internal/api/donation/models"
	donationservices "ngo_portal/internal/api/donation/service"
	eventmodels "ngo_portal/internal/api/event/models"
	eventservices "ngo_portal/internal/api/event/service"
	settingmodels "ngo_portal/internal/api/settings/models"
	settingservices "ngo_portal/internal/api/settings/service"
	"ngo_portal/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// Default admin created on first seed. The credentials are returned
// once in the seed response so operators can log in and change them.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "changeme123"
	DefaultAdminEmail    = "admin@sevasankalp.org"
)

// SeedResult reports what the seed run inserted. Credentials is only
// filled when the default admin was created on this run.
type SeedResult struct {
	AdminCreated bool              `json:"adminCreated"`
	Inserted     map[string]int    `json:"inserted"`
	Credentials  map[string]string `json:"credentials,omitempty"`
}

// SeedService populates empty collections with demo data. Every step
// checks the collection first, so running it twice changes nothing.
type SeedService struct {
	auth        *authservices.AuthService
	events      *eventservices.EventService
	galleries   *eventservices.GalleryService
	posts       *contentservices.PostService
	teamMembers *contentservices.TeamMemberService
	settings    *settingservices.SettingsService
	donations   *donationservices.DonationService
}

func NewSeedService() *SeedService {
	return &SeedService{
		auth:        authservices.NewAuthService(),
		events:      eventservices.NewEventService(),
		galleries:   eventservices.NewGalleryService(),
		posts:       contentservices.NewPostService(),
		teamMembers: contentservices.NewTeamMemberService(),
		settings:    settingservices.NewSettingsService(),
		donations:   donationservices.NewDonationService(),
	}
}

// Run seeds every collection that is still empty and reports what it
// inserted.
func (s *SeedService) Run(ctx context.Context) (SeedResult, error) {
	log := logger.GetAppLogger()
	result := SeedResult{Inserted: map[string]int{}}

	adminCount, err := s.auth.CountDocuments(ctx, bson.M{})
	if err != nil {
		return result, err
	}
	if adminCount == 0 {
		if _, err := s.auth.CreateAdmin(ctx,
			DefaultAdminUsername, DefaultAdminEmail, DefaultAdminPassword, "Site Administrator"); err != nil {
			return result, err
		}
		result.AdminCreated = true
		result.Credentials = map[string]string{
			"username": DefaultAdminUsername,
			"password": DefaultAdminPassword,
		}
		log.Warn("Seeded default admin account, change the password after first login")
	}

	n, err := s.seedEvents(ctx)
	if err != nil {
		return result, err
	}
	result.Inserted["events"] = n

	n, err = s.seedGallery(ctx)
	if err != nil {
		return result, err
	}
	result.Inserted["gallery"] = n

	n, err = s.seedPosts(ctx)
	if err != nil {
		return result, err
	}
	result.Inserted["posts"] = n

	n, err = s.seedTeamMembers(ctx)
	if err != nil {
		return result, err
	}
	result.Inserted["teammembers"] = n

	n, err = s.seedSettings(ctx)
	if err != nil {
		return result, err
	}
	result.Inserted["settings"] = n

	n, err = s.seedDonations(ctx)
	if err != nil {
		return result, err
	}
	result.Inserted["donations"] = n

	log.WithField("inserted", result.Inserted).Info("Seed run finished")
	return result, nil
}

func (s *SeedService) seedEvents(ctx context.Context) (int, error) {
	count, err := s.events.CountDocuments(ctx, bson.M{})
	if err != nil || count > 0 {
		return 0, err
	}

	demo := []eventmodels.Event{
		{
			Title:       "Annual Health Camp",
			Description: "Free health checkups and medicine distribution for nearby villages.",
			Location:    "Community Hall, Sector 12",
			Organizer:   "Health Program Team",
			EventDate:   "2026-10-02",
			EventTime:   "09:00",
			Category:    "health",
		},
		{
			Title:       "Tree Plantation Drive",
			Description: "Planting 500 saplings along the riverbank with local school students.",
			Location:    "Riverbank Park",
			EventDate:   "2026-09-15",
			EventTime:   "07:30",
			Category:    "environment",
		},
		{
			Title:           "Winter Clothes Collection",
			Description:     "Collection drive for warm clothes and blankets.",
			Location:        "Foundation Office",
			EventDate:       "2026-11-20",
			Category:        "welfare",
			MaxParticipants: 50,
		},
	}
	for _, event := range demo {
		if _, err := s.events.InsertOne(ctx, event); err != nil {
			return 0, err
		}
	}
	return len(demo), nil
}

func (s *SeedService) seedGallery(ctx context.Context) (int, error) {
	count, err := s.galleries.CountDocuments(ctx, bson.M{})
	if err != nil || count > 0 {
		return 0, err
	}

	demo := []eventmodels.GalleryItem{
		{
			Title:    "Health camp 2025",
			ImageUrl: "/uploads/gallery/health-camp-2025.jpg",
			Category: "health",
		},
		{
			Title:       "Plantation drive volunteers",
			ImageUrl:    "/uploads/gallery/plantation-volunteers.jpg",
			Description: "Volunteers at last year's plantation drive.",
			Category:    "environment",
			Tags:        []string{"volunteers", "environment"},
		},
	}
	for _, item := range demo {
		if _, err := s.galleries.InsertOne(ctx, item); err != nil {
			return 0, err
		}
	}
	return len(demo), nil
}

func (s *SeedService) seedPosts(ctx context.Context) (int, error) {
	count, err := s.posts.CountDocuments(ctx, bson.M{})
	if err != nil || count > 0 {
		return 0, err
	}

	demo := []contentmodels.Post{
		{
			Title:    "Welcome to Seva Sankalp Foundation",
			Content:  "We work with local communities on health, education and the environment. Read about our ongoing programs and how you can help.",
			Excerpt:  "Who we are and what we do.",
			Type:     contentmodels.PostTypeAnnouncement,
			Category: "news",
			Tags:     []string{"about", "welcome"},
			Pinned:   true,
		},
		{
			Title:    "500 Students Reached in Literacy Program",
			Content:  "Our weekend literacy program completed its second year, reaching 500 students across 8 villages.",
			Excerpt:  "Literacy program milestone.",
			Category: "impact",
			Tags:     []string{"education"},
		},
	}
	for _, post := range demo {
		if _, err := s.posts.CreatePost(ctx, post); err != nil {
			return 0, err
		}
	}
	return len(demo), nil
}

func (s *SeedService) seedTeamMembers(ctx context.Context) (int, error) {
	count, err := s.teamMembers.CountDocuments(ctx, bson.M{})
	if err != nil || count > 0 {
		return 0, err
	}

	demo := []contentmodels.TeamMember{
		{
			Name:         "Asha Patil",
			Role:         "Founder & Director",
			Bio:          "Started the foundation in 2015 after a decade in rural public health.",
			DisplayOrder: 1,
		},
		{
			Name:         "Ravi Kulkarni",
			Role:         "Program Coordinator",
			Bio:          "Coordinates field programs and the volunteer network.",
			DisplayOrder: 2,
		},
		{
			Name:         "Meera Joshi",
			Role:         "Treasurer",
			DisplayOrder: 3,
		},
	}
	for _, member := range demo {
		if _, err := s.teamMembers.InsertOne(ctx, member); err != nil {
			return 0, err
		}
	}
	return len(demo), nil
}

func (s *SeedService) seedSettings(ctx context.Context) (int, error) {
	count, err := s.settings.CountDocuments(ctx, bson.M{})
	if err != nil || count > 0 {
		return 0, err
	}

	demo := []settingmodels.Setting{
		{Key: "site_name", Value: "Seva Sankalp Foundation", Category: "general", Description: "Name shown in the site header"},
		{Key: "contact_email", Value: "contact@sevasankalp.org", Category: "contact"},
		{Key: "contact_phone", Value: "+91 98765 43210", Category: "contact"},
		{Key: "donation_goal", Value: 500000, Category: "donations", Description: "Annual fundraising goal in INR"},
		{Key: "social_links", Value: map[string]interface{}{
			"facebook":  "https://facebook.com/sevasankalp",
			"instagram": "https://instagram.com/sevasankalp",
		}, Category: "general"},
	}
	for _, setting := range demo {
		if _, err := s.settings.InsertOne(ctx, setting); err != nil {
			return 0, err
		}
	}
	return len(demo), nil
}

func (s *SeedService) seedDonations(ctx context.Context) (int, error) {
	count, err := s.donations.CountDocuments(ctx, bson.M{})
	if err != nil || count > 0 {
		return 0, err
	}

	// Goes through CreateDonation so the sample gets a real receipt
	// number from the sequencer.
	sample := donationmodels.Donation{
		DonorName:  "Sample Donor",
		DonorEmail: "donor@example.com",
		Amount:     1000,
		Purpose:    "General Donation",
		Message:    "Keep up the good work.",
	}
	if _, err := s.donations.CreateDonation(ctx, sample); err != nil {
		return 0, err
	}
	return 1, nil
}
