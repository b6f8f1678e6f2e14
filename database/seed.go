package database

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hariship/apps-dashboard-backend/models"
)

// SeedStrategy populates an already-wiped schema. Strategies run inside the
// transaction RunSeed opens, so a failing step rolls everything back.
type SeedStrategy func(tx *gorm.DB) error

// RunSeed wipes every table and repopulates it with the given strategy,
// all-or-nothing.
func RunSeed(db *gorm.DB, strategy SeedStrategy) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := wipe(tx); err != nil {
			return err
		}
		return strategy(tx)
	})
}

// wipe clears every table, children before parents.
func wipe(tx *gorm.DB) error {
	tables := []string{
		"updates",
		"project_technologies",
		"projects",
		"technologies",
		"integrations",
		"users",
	}
	for _, table := range tables {
		if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedGeneral is the general-purpose example dataset: six technologies, three
// integrations and a single featured project with its changelog.
func SeedGeneral(adminEmail, adminPassword string) SeedStrategy {
	return func(tx *gorm.DB) error {
		technologies := []models.Technology{
			{Name: "Next.js", Slug: "nextjs", Category: "framework", Color: "#000000", Icon: strPtr("nextjs"), WebsiteURL: strPtr("https://nextjs.org"), Active: true},
			{Name: "TypeScript", Slug: "typescript", Category: "language", Color: "#3178C6", Icon: strPtr("typescript"), WebsiteURL: strPtr("https://typescriptlang.org"), Active: true},
			{Name: "React", Slug: "react", Category: "frontend", Color: "#61DAFB", Icon: strPtr("react"), WebsiteURL: strPtr("https://reactjs.org"), Active: true},
			{Name: "Tailwind CSS", Slug: "tailwindcss", Category: "frontend", Color: "#06B6D4", Icon: strPtr("tailwindcss"), WebsiteURL: strPtr("https://tailwindcss.com"), Active: true},
			{Name: "PostgreSQL", Slug: "postgresql", Category: "database", Color: "#336791", Icon: strPtr("postgresql"), WebsiteURL: strPtr("https://postgresql.org"), Active: true},
			{Name: "Node.js", Slug: "nodejs", Category: "backend", Color: "#339933", Icon: strPtr("nodejs"), WebsiteURL: strPtr("https://nodejs.org"), Active: true},
		}
		for i := range technologies {
			if err := tx.Create(&technologies[i]).Error; err != nil {
				return err
			}
		}

		integrations := []models.Integration{
			{Name: "Vercel", Slug: "vercel", Description: "Deployment and hosting platform", URL: "https://vercel.com", Icon: strPtr("vercel"), Status: "operational", Version: strPtr("1.0.0"), Enabled: true},
			{Name: "Cloudflare Pages", Slug: "cloudflare-pages", Description: "Edge deployment platform", URL: "https://pages.cloudflare.com", Icon: strPtr("cloudflare"), Status: "operational", Version: strPtr("1.0.0"), Enabled: true},
			{Name: "GitHub", Slug: "github", Description: "Source code repository", URL: "https://github.com", Icon: strPtr("github"), Status: "operational", Enabled: true},
		}
		for i := range integrations {
			if err := tx.Create(&integrations[i]).Error; err != nil {
				return err
			}
		}

		architectureDiagram := `graph TB
    A[User Interface] --> B[Next.js App Router]
    B --> C[API Layer]
    C --> D[PostgreSQL Database]
    C --> E[External APIs]

    subgraph Frontend
        A
        B
        F[React Components]
        G[Tailwind CSS]
    end

    subgraph Backend
        C
        H[Authentication]
        I[Data Processing]
    end

    subgraph Data
        D
        E
        J[Real-time Updates]
    end`

		architectureCode := `// Architecture: Next.js 15 with App Router
// Frontend: React 19 + Tailwind CSS
// Backend: API Routes + PostgreSQL
// Auth: NextAuth.js
// Deployment: Vercel + Cloudflare

const architecture = {
  frontend: {
    framework: "Next.js 15",
    ui: "React 19",
    styling: "Tailwind CSS",
    theme: "next-themes"
  },
  backend: {
    api: "Next.js API Routes",
    database: "PostgreSQL + Supabase",
    auth: "NextAuth.js"
  },
  deployment: {
    primary: "Vercel",
    cdn: "Cloudflare Pages"
  }
};`

		project := models.Project{
			Name:                 "Civic Pulse Dashboard",
			Slug:                 "civic-pulse-dashboard",
			Description:          "A comprehensive dashboard for tracking civic engagement metrics, voter turnout, and community participation across different regions.",
			LongDescription:      strPtr("The Civic Pulse Dashboard is a data visualization platform that provides insights into civic engagement patterns. It aggregates data from multiple sources to present a clear picture of democratic participation, helping organizations and researchers understand trends in voter behavior and community involvement."),
			LiveURL:              "https://civic-pulse-dashboard.haripriya.org",
			SourceURL:            "https://github.com/your-username/civic-pulse-dashboard",
			ImageURL:             strPtr("/projects/civic-pulse.jpg"),
			Status:               "active",
			Featured:             true,
			SortOrder:            1,
			ArchitectureDiagram:  &architectureDiagram,
			ArchitectureCode:     &architectureCode,
			TechStackDescription: strPtr("Built with modern web technologies focusing on performance and scalability. Uses Next.js 15 with App Router for optimal SEO and loading speeds, React 19 for the latest features, and PostgreSQL for reliable data storage."),
		}
		if err := tx.Create(&project).Error; err != nil {
			return err
		}

		if err := linkTechnologies(tx, project.ID, []string{"nextjs", "typescript", "react", "tailwindcss", "postgresql"}); err != nil {
			return err
		}

		updates := []models.Update{
			{ProjectID: project.ID, Title: "Initial Release", Content: "Launched the first version of Civic Pulse Dashboard with core features including data visualization, real-time metrics, and responsive design.", Version: strPtr("v1.0.0"), UpdateType: "feature", Published: true},
			{ProjectID: project.ID, Title: "Performance Optimization", Content: "Improved loading speeds by 40% through code splitting and image optimization.", Version: strPtr("v1.1.0"), UpdateType: "performance", Published: true},
			{ProjectID: project.ID, Title: "Dark Mode Support", Content: "Added comprehensive dark mode support with system preference detection.", Version: strPtr("v1.2.0"), UpdateType: "feature", Published: true},
			{ProjectID: project.ID, Title: "Security Enhancement", Content: "Updated authentication system and added rate limiting for API endpoints.", Version: strPtr("v1.2.1"), UpdateType: "security", Published: true},
		}
		for i := range updates {
			if err := tx.Create(&updates[i]).Error; err != nil {
				return err
			}
		}

		return seedAdminUser(tx, adminEmail, adminPassword)
	}
}

// SeedCivicPulse is the dataset behind the public site: the Civic Pulse and
// Apps Dashboard projects, project-specific infrastructure and the changelog
// derived from the repository's git history.
func SeedCivicPulse(adminEmail, adminPassword string) SeedStrategy {
	return func(tx *gorm.DB) error {
		technologies := []models.Technology{
			{Name: "Next.js", Slug: "nextjs", Category: "frontend", Color: "#000000", Icon: strPtr("nextjs"), WebsiteURL: strPtr("https://nextjs.org"), Active: true},
			{Name: "TypeScript", Slug: "typescript", Category: "frontend", Color: "#3178C6", Icon: strPtr("typescript"), WebsiteURL: strPtr("https://typescriptlang.org"), Active: true},
			{Name: "React", Slug: "react", Category: "frontend", Color: "#61DAFB", Icon: strPtr("react"), WebsiteURL: strPtr("https://reactjs.org"), Active: true},
			{Name: "Tailwind CSS", Slug: "tailwindcss", Category: "frontend", Color: "#06B6D4", Icon: strPtr("tailwindcss"), WebsiteURL: strPtr("https://tailwindcss.com"), Active: true},
			{Name: "PostgreSQL", Slug: "postgresql", Category: "backend", Color: "#336791", Icon: strPtr("postgresql"), WebsiteURL: strPtr("https://postgresql.org"), Active: true},
			{Name: "Supabase", Slug: "supabase", Category: "backend", Color: "#3ECF8E", Icon: strPtr("supabase"), WebsiteURL: strPtr("https://supabase.com"), Active: true},
			{Name: "NextAuth.js", Slug: "nextauth", Category: "backend", Color: "#7C3AED", Icon: strPtr("nextauth"), WebsiteURL: strPtr("https://next-auth.js.org"), Active: true},
			{Name: "Mermaid", Slug: "mermaid", Category: "frontend", Color: "#2563EB", Icon: strPtr("mermaid"), WebsiteURL: strPtr("https://mermaid.js.org"), Active: true},
			{Name: "Cloudflare", Slug: "cloudflare", Category: "devops", Color: "#1E40AF", Icon: strPtr("cloudflare"), WebsiteURL: strPtr("https://cloudflare.com"), Active: true},
		}
		for i := range technologies {
			if err := tx.Create(&technologies[i]).Error; err != nil {
				return err
			}
		}

		civicPulseArchitecture := `graph TB
    A[React Frontend] --> B[Node.js API]
    B --> C[MongoDB Database]
    A --> D[Chart.js Visualizations]
    B --> E[Data Processing Engine]
    E --> F[External APIs]

    subgraph Frontend
        A
        D
        G[Material-UI]
    end

    subgraph Backend
        B
        E
        H[Express Server]
    end

    subgraph Data
        C
        F
        I[Real-time Updates]
    end`

		civicProject := models.Project{
			Name:                 "Civic Pulse",
			Slug:                 "civic-pulse",
			Description:          "A comprehensive dashboard for tracking civic engagement metrics, voter turnout, and community participation across different regions.",
			LongDescription:      strPtr("Civic Pulse is a data visualization platform that provides insights into civic engagement patterns. It aggregates data from multiple sources to present a clear picture of democratic participation, helping organizations and researchers understand trends in voter behavior and community involvement across various demographics and geographic regions."),
			LiveURL:              "https://civic-pulse-dashboard.haripriya.org",
			SourceURL:            "https://github.com/hariship/civic-pulse",
			ImageURL:             strPtr("/projects/civic-pulse.jpg"),
			Status:               "active",
			Featured:             true,
			SortOrder:            1,
			ArchitectureDiagram:  &civicPulseArchitecture,
			TechStackDescription: strPtr("Data-driven civic engagement platform built with React and Node.js. Features interactive Chart.js visualizations, Material-UI components, and MongoDB for scalable data storage. Includes real-time data processing engine for aggregating civic metrics from multiple sources and APIs."),
		}
		if err := tx.Create(&civicProject).Error; err != nil {
			return err
		}
		if err := linkTechnologies(tx, civicProject.ID, []string{"react", "nodejs", "typescript", "tailwindcss"}); err != nil {
			return err
		}

		appsArchitecture := `graph LR
    A[Next.js Frontend] --> B[API Routes]
    B --> C[Supabase Database]
    A --> D[NextAuth]
    A --> E[Mermaid]
    C --> F[Projects]
    C --> G[Technologies]
    C --> H[Updates]
    I[Cloudflare] --> A`

		appsProject := models.Project{
			Name:                 "Apps Dashboard",
			Slug:                 "apps-dashboard",
			Description:          "A modern portfolio dashboard for managing and showcasing development projects with interactive architecture diagrams and technology stack visualization.",
			LongDescription:      strPtr("The Apps Dashboard is a full-stack portfolio management platform built with Next.js 15 and React 19. It features a Star Trek LCARS-inspired design with dark/light mode support, interactive Mermaid diagrams for system architecture visualization, and comprehensive project management capabilities. The dashboard integrates with PostgreSQL via Supabase for data persistence and includes NextAuth.js for authentication."),
			LiveURL:              "http://localhost:3000",
			SourceURL:            "https://github.com/hariship/apps",
			ImageURL:             strPtr("/projects/apps-dashboard.jpg"),
			Status:               "active",
			Featured:             true,
			SortOrder:            2,
			ArchitectureDiagram:  &appsArchitecture,
			TechStackDescription: strPtr("Portfolio dashboard showcasing development projects with real-time GitHub integration. Built with Next.js 15 App Router, React 19, and TypeScript. Features LCARS-inspired design with Tailwind CSS, dynamic Mermaid.js architecture diagrams, and live commit feeds from GitHub API. Data layer powered by PostgreSQL via Supabase, with NextAuth.js for authentication. Deployed on Cloudflare Pages."),
		}
		if err := tx.Create(&appsProject).Error; err != nil {
			return err
		}
		if err := linkTechnologies(tx, appsProject.ID, []string{"nextjs", "typescript", "react", "tailwindcss", "postgresql", "supabase", "nextauth", "mermaid", "cloudflare"}); err != nil {
			return err
		}

		integrations := []models.Integration{
			{Name: "Cloudflare Pages", Slug: "cloudflare-pages", Description: "Frontend deployment and CDN", URL: "https://pages.cloudflare.com", Icon: strPtr("cloudflare"), Status: "operational", Version: strPtr("1.0.0"), Enabled: true},
			{Name: "Supabase", Slug: "supabase", Description: "PostgreSQL database hosting", URL: "https://supabase.com", Icon: strPtr("supabase"), Status: "operational", Version: strPtr("2.0.0"), Enabled: true},
			{Name: "GitHub", Slug: "github", Description: "Source code repository", URL: "https://github.com/hariship/apps", Icon: strPtr("github"), Status: "operational", Enabled: true},
		}
		for i := range integrations {
			if err := tx.Create(&integrations[i]).Error; err != nil {
				return err
			}
		}

		updates := []models.Update{
			{ProjectID: appsProject.ID, Title: "Initial Dashboard Setup with Star Trek Theme", Content: "Set up the foundational dashboard architecture with Star Trek LCARS-inspired theme, implemented the basic layout structure and established the design system with earthy color palette.", Version: strPtr("v1.0.0"), UpdateType: "feature", Published: true},
			{ProjectID: appsProject.ID, Title: "React 19 Compatibility Issues Fixed", Content: "Resolved compatibility issues with Framer Motion and React 19, updated all animation components to work seamlessly with the latest React version and improved component lifecycle management.", Version: strPtr("v1.1.0"), UpdateType: "bugfix", Published: true},
			{ProjectID: appsProject.ID, Title: "Styling and UI Layout Improvements", Content: "Enhanced UI layout responsiveness, fixed styling inconsistencies across different screen sizes, and improved the overall visual hierarchy of dashboard components.", Version: strPtr("v1.2.0"), UpdateType: "feature", Published: true},
			{ProjectID: appsProject.ID, Title: "Tailwind CSS Loading Issues Resolved", Content: "Fixed critical Tailwind CSS loading problems that were causing style inconsistencies, optimized CSS bundle size, and improved initial page load performance.", Version: strPtr("v1.2.1"), UpdateType: "bugfix", Published: true},
			{ProjectID: appsProject.ID, Title: "Complete Light/Dark Theme Support", Content: "Implemented comprehensive light and dark theme switching functionality with proper color scheme management, theme persistence, and seamless transitions between modes.", Version: strPtr("v1.3.0"), UpdateType: "feature", Published: true},
		}
		for i := range updates {
			if err := tx.Create(&updates[i]).Error; err != nil {
				return err
			}
		}

		return seedAdminUser(tx, adminEmail, adminPassword)
	}
}

// linkTechnologies resolves slugs to ids and inserts the join rows. Unknown
// slugs are skipped, matching how the site's original seed behaved.
func linkTechnologies(tx *gorm.DB, projectID uint, slugs []string) error {
	linkRepo := NewProjectTechnologyRepo(tx)
	for _, slug := range slugs {
		var technology models.Technology
		result := tx.Where("slug = ?", slug).Limit(1).Find(&technology)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			continue
		}
		link := models.ProjectTechnology{ProjectID: projectID, TechnologyID: technology.ID}
		if err := linkRepo.Add(&link); err != nil {
			return err
		}
	}
	return nil
}

func seedAdminUser(tx *gorm.DB, email, password string) error {
	if email == "" {
		email = "admin@haripriya.org"
	}
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    "Hari",
		LastName:     "Admin",
		Role:         "admin",
		Active:       true,
	}
	return tx.Create(&admin).Error
}

func strPtr(s string) *string {
	return &s
}
