package memory

import "helpize/internal/models"

// DefaultResources is the resource catalogue shown on /resources.
func DefaultResources() []models.Resource {
	return []models.Resource{
		{ID: 1, Title: "Emergency Kit Guide", Category: "Disaster", Description: "How to prepare an emergency kit."},
		{ID: 2, Title: "Volunteer Training", Category: "Training", Description: "Online training for volunteers."},
	}
}

func DefaultBlogPosts() []models.BlogPost {
	return []models.BlogPost{
		{ID: 1, Title: "Helping in Disasters", Content: "Placeholder blog content...", Comments: []models.Comment{}},
	}
}
