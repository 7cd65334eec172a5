// Command seed wipes and repopulates the content tables with demo data so a
// fresh deployment has projects, client testimonials and admin accounts to
// show. Not for production databases.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"realtrust-http-service/internal/domain/models"
	"realtrust-http-service/internal/domain/services"
	"realtrust-http-service/internal/infrastructure/config"
	"realtrust-http-service/internal/infrastructure/database"
)

var projectsData = []models.Project{
	{
		Name:        "Real Estate Platform",
		Description: "A comprehensive web platform for buying, selling, and renting properties with advanced search filters and virtual tours.",
		Image:       "/public/images/young-couple-examining-blueprints-with-real-estate-agent-while-buying-new-home 1.svg",
		Category:    "Web Development",
	},
	{
		Name:        "Team Collaboration Suite",
		Description: "Enterprise-level collaboration tool designed for remote teams with integrated video conferencing, document sharing, and project management.",
		Image:       "/public/images/pexels-fauxels-3182834.svg",
		Category:    "SaaS",
	},
	{
		Name:        "Business Growth Analytics",
		Description: "Advanced analytics dashboard that provides real-time insights into business metrics, customer behavior, and sales trends.",
		Image:       "/public/images/pexels-brett-sayles-2881232.svg",
		Category:    "Analytics",
	},
	{
		Name:        "Modern Office Design",
		Description: "Contemporary office space redesign featuring flexible workstations, collaborative zones, and state-of-the-art technology integration.",
		Image:       "/public/images/pexels-brett-sayles-2881232-1.svg",
		Category:    "Interior Design",
	},
	{
		Name:        "Digital Marketing Campaign",
		Description: "Full-scale digital marketing initiative including social media strategy, content creation, SEO optimization, and PPC advertising.",
		Image:       "/public/images/pexels-andres-ayrton-6578391.svg",
		Category:    "Marketing",
	},
}

var clientsData = []models.Client{
	{
		Name:        "Sarah Johnson",
		Designation: "CEO, TechStart Inc.",
		Description: "Sarah is a visionary leader with 15 years of experience in building scalable tech companies. She transformed our platform's architecture and vision.",
		Image:       "/public/images/Ellipse 11.svg",
	},
	{
		Name:        "Michael Chen",
		Designation: "Product Manager, InnovateLabs",
		Description: "Michael brought exceptional product strategy and user-centric design principles to our projects, resulting in 300% user growth.",
		Image:       "/public/images/Ellipse 12.svg",
	},
	{
		Name:        "Emily Rodriguez",
		Designation: "Operations Director, Global Solutions",
		Description: "Emily's operational expertise streamlined our processes and improved efficiency by 45%. A true game-changer for our organization.",
		Image:       "/public/images/Ellipse 13.svg",
	},
	{
		Name:        "David Thompson",
		Designation: "Founder, Creative Studios",
		Description: "David's creative vision and innovative approach to problem-solving have been instrumental in our design excellence.",
		Image:       "/public/images/Ellipse 28.svg",
	},
	{
		Name:        "Lisa Wang",
		Designation: "Financial Director, Enterprise Corp",
		Description: "Lisa's financial acumen and strategic planning helped us optimize costs while maintaining quality. A trusted advisor.",
		Image:       "/public/images/Ellipse 29.svg",
	},
	{
		Name:        "James Morrison",
		Designation: "VP Engineering, TechVenture",
		Description: "James led our technical infrastructure upgrade, reducing system downtime by 60% and improving performance significantly.",
		Image:       "/public/images/Ellipse 31.svg",
	},
	{
		Name:        "Amanda Foster",
		Designation: "Marketing Head, BrandWorks",
		Description: "Amanda's marketing strategies increased our brand visibility and customer engagement across all channels.",
		Image:       "/public/images/Ellipse 33.svg",
	},
	{
		Name:        "Christopher Lee",
		Designation: "Consultant, Business Growth Partners",
		Description: "Christopher provided invaluable strategic guidance that helped us scale to new markets and double our revenue.",
		Image:       "/public/images/Ellipse 35.svg",
	},
	{
		Name:        "Victoria Harris",
		Designation: "HR Manager, People First Inc.",
		Description: "Victoria built a strong company culture and recruited top talent that transformed our team dynamics and productivity.",
		Image:       "/public/images/Rectangle.svg",
	},
	{
		Name:        "Robert Williams",
		Designation: "Sales Director, Revenue Solutions",
		Description: "Robert's sales expertise and relationship-building skills resulted in a 250% increase in enterprise clients within one year.",
		Image:       "/public/images/pexels-brett-sayles-2881232-2.svg",
	},
}

type adminSeed struct {
	Name     string
	Email    string
	Password string
	Role     string
}

var adminData = []adminSeed{
	{Name: "Super Admin", Email: "admin@realtrust.local", Password: "admin@123", Role: models.RoleSuperAdmin},
	{Name: "Admin User", Email: "user@realtrust.local", Password: "user@123", Role: models.RoleAdmin},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Could not load .env file: %v", err)
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()
	db := pool.GetDB()

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Lead{},
		&models.Project{},
		&models.Client{},
		&models.Subscriber{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Clear existing content before reseeding
	for _, table := range []string{"projects", "clients", "admins"} {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			log.Fatalf("Failed to clear table %s: %v", table, err)
		}
	}
	log.Println("Cleared existing data")

	if err := db.Create(&projectsData).Error; err != nil {
		log.Fatalf("Failed to seed projects: %v", err)
	}
	log.Printf("Seeded %d projects", len(projectsData))

	if err := db.Create(&clientsData).Error; err != nil {
		log.Fatalf("Failed to seed clients: %v", err)
	}
	log.Printf("Seeded %d clients", len(clientsData))

	// Go through the service so passwords are hashed the same way as at
	// runtime, then fix up the role for the super admin.
	adminService := services.NewAdminService(db, cfg)
	for _, a := range adminData {
		admin, err := adminService.Register(a.Name, a.Email, a.Password)
		if err != nil {
			log.Fatalf("Failed to seed admin %s: %v", a.Email, err)
		}
		if a.Role != models.RoleAdmin {
			if err := db.Model(admin).Update("role", a.Role).Error; err != nil {
				log.Fatalf("Failed to set role for %s: %v", a.Email, err)
			}
		}
	}
	log.Printf("Seeded %d admin users", len(adminData))

	fmt.Println("\nDatabase seeding completed")
	fmt.Println("Admin credentials:")
	for _, a := range adminData {
		fmt.Printf("  %s / %s (%s)\n", a.Email, a.Password, a.Role)
	}

	os.Exit(0)
}
