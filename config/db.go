package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-pms/models"
	"hotel-pms/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_pms")

	// Dates are stored midnight UTC; keep the connection in UTC too.
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

// Migrate runs AutoMigrate in parent->child order on the given handle. The
// tests call this against sqlite; ConnectDatabase calls it against MySQL.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Property{},
		&models.RoomType{},
		&models.Room{},
		&models.RatePlan{},
		&models.DailyRate{},
		&models.Guest{},
		&models.Reservation{},
	)
}

// SeedDatabase creates a default admin and a demo property with room types,
// rooms and a flexible rate plan when the database is empty.
func SeedDatabase() {
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(utils.EnvOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName: "Front Desk Admin",
				Username: "admin@hotel.local",
				Password: string(hash),
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var propertyCount int64
	DB.Model(&models.Property{}).Count(&propertyCount)
	if propertyCount > 0 {
		return
	}

	property := models.Property{
		Name:     "Demo Hotel",
		Address:  "1 Beach Road",
		Timezone: "UTC",
	}
	if err := DB.Create(&property).Error; err != nil {
		log.Printf("warning: failed to seed property: %v", err)
		return
	}

	roomTypes := []models.RoomType{
		{PropertyID: property.ID, TypeName: "Standard", Description: "Standard Room", MaxOccupancy: 2, BaseRate: 100},
		{PropertyID: property.ID, TypeName: "Superior", Description: "Superior Room", MaxOccupancy: 3, BaseRate: 140},
		{PropertyID: property.ID, TypeName: "Deluxe", Description: "Deluxe Room", MaxOccupancy: 4, BaseRate: 190},
	}
	if err := DB.Create(&roomTypes).Error; err != nil {
		log.Printf("warning: failed to seed room types: %v", err)
		return
	}

	rooms := []models.Room{}
	for i, rt := range roomTypes {
		typeID := rt.ID
		for n := 1; n <= 4; n++ {
			rooms = append(rooms, models.Room{
				PropertyID: property.ID,
				RoomTypeID: &typeID,
				RoomNumber: fmt.Sprintf("%d0%d", i+1, n),
				Floor:      fmt.Sprintf("%d", i+1),
				Active:     true,
				Status:     "Available",
			})
		}
	}
	if err := DB.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed rooms: %v", err)
	}

	plan := models.RatePlan{
		PropertyID:  property.ID,
		Name:        "Flexible",
		Description: "Best flexible rate, no length-of-stay restriction",
		IsActive:    true,
	}
	if err := DB.Create(&plan).Error; err != nil {
		log.Printf("warning: failed to seed rate plan: %v", err)
	}

	log.Println("Demo property seeded")
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
