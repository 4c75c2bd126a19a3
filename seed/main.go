// Command seed fills a development database with staff, catalogue, coupons and a week of bookings.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"salonbook/config"
	"salonbook/database"
	"salonbook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type staffProfile struct {
	ID        string    `bson:"id"`
	Name      string    `bson:"name"`
	CreatedAt time.Time `bson:"createdAt"`
}

func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, name := range []string{"staff_profiles", "services", "coupons", "appointments"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", name, err)
		}
	}

	insert(ctx, db.Collection("staff_profiles"), staff())
	catalogue := services()
	insert(ctx, db.Collection("services"), toDocs(catalogue))
	insert(ctx, db.Collection("coupons"), coupons())
	insert(ctx, db.Collection("appointments"), appointments(catalogue))

	fmt.Println("Seed complete.")
}

func insert(ctx context.Context, coll *mongo.Collection, docs []interface{}) {
	res, err := coll.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to insert into %s: %v", coll.Name(), err)
	}
	fmt.Printf("Inserted %d documents into %s\n", len(res.InsertedIDs), coll.Name())
}

func toDocs[T any](items []T) []interface{} {
	docs := make([]interface{}, len(items))
	for i, it := range items {
		docs[i] = it
	}
	return docs
}

func staff() []interface{} {
	names := []string{"Ayu", "Dewi", "Rina"}
	out := make([]staffProfile, len(names))
	for i, n := range names {
		out[i] = staffProfile{ID: fmt.Sprintf("staff-%d", i+1), Name: n, CreatedAt: time.Now()}
	}
	return toDocs(out)
}

func services() []models.Service {
	return []models.Service{
		{ID: "svc-haircut", Name: "Haircut", CategoryID: "hair", Price: 80000, DurationMinutes: 45},
		{ID: "svc-hairwash", Name: "Hair wash", CategoryID: "hair", Price: 20000, DurationMinutes: 15},
		{ID: "svc-creambath", Name: "Creambath", CategoryID: "hair", Price: 120000, DurationMinutes: 60},
		{ID: "svc-manicure", Name: "Manicure", CategoryID: "nails", Price: 75000, DurationMinutes: 45},
		{ID: "svc-pedicure", Name: "Pedicure", CategoryID: "nails", Price: 85000, DurationMinutes: 60},
		{ID: "svc-facial", Name: "Facial", CategoryID: "skin", Price: 150000, DurationMinutes: 75},
	}
}

func coupons() []interface{} {
	now := time.Now()
	nextMonth := now.AddDate(0, 1, 0)
	lastWeek := now.AddDate(0, 0, -7)
	limit := int64(100)

	return toDocs([]models.Coupon{
		{ID: uuid.NewString(), Code: "HEMAT10", DiscountType: models.DiscountPercent, Amount: 10, IsActive: true, EndDate: &nextMonth},
		{ID: uuid.NewString(), Code: "POTONG50", DiscountType: models.DiscountFixed, Amount: 50000, MinSpend: 100000, IsActive: true, UsageLimit: &limit},
		{ID: uuid.NewString(), Code: "RAMBUT20", DiscountType: models.DiscountPercent, Amount: 20, IsActive: true, CategoryIDs: []string{"hair"}},
		{ID: uuid.NewString(), Code: "KUKU", DiscountType: models.DiscountFixed, Amount: 15000, IsActive: true, ServiceIDs: []string{"svc-manicure", "svc-pedicure"}},
		{ID: uuid.NewString(), Code: "LEBARAN", DiscountType: models.DiscountPercent, Amount: 25, IsActive: true, EndDate: &lastWeek},
	})
}

// appointments spreads random bookings over business hours for the next seven days.
func appointments(catalogue []models.Service) []interface{} {
	loc := config.Location()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := time.Now().In(loc)
	statuses := []string{"confirmed", "confirmed", "confirmed", "pending", "cancelled"}

	var out []models.Appointment
	for d := 0; d < 7; d++ {
		day := time.Date(today.Year(), today.Month(), today.Day()+d, 0, 0, 0, 0, loc)
		if day.Weekday() == time.Weekday(config.AppConfig.ClosedWeekday) {
			continue
		}
		for i := 0; i < 6; i++ {
			svc := catalogue[rng.Intn(len(catalogue))]
			startMinutes := config.AppConfig.WorkStartMinutes + 30*rng.Intn(16)
			start := day.Add(time.Duration(startMinutes) * time.Minute)
			out = append(out, models.Appointment{
				ID:         uuid.NewString(),
				CustomerID: fmt.Sprintf("cust-%d", rng.Intn(20)+1),
				Date:       day,
				StartTime:  start,
				EndTime:    start.Add(time.Duration(svc.DurationMinutes) * time.Minute),
				Status:     statuses[rng.Intn(len(statuses))],
			})
		}
	}
	log.Printf("Generated %d appointments", len(out))
	return toDocs(out)
}
