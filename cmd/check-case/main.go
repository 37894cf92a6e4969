package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	godotenv.Load()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./geointel.db"
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	fmt.Println("🔍 Checking Stored Cases")
	fmt.Println("========================")

	if os.Getenv("HF_TOKEN") == "" {
		fmt.Println("⚠️  WARNING: HF_TOKEN not configured, inference fields will be error markers")
	} else {
		fmt.Println("✅ Inference token configured")
	}

	switch {
	case os.Getenv("SERPAPI_KEY") != "":
		fmt.Println("✅ Search provider: serpapi")
	case os.Getenv("BING_API_KEY") != "":
		fmt.Println("✅ Search provider: bing")
	default:
		fmt.Println("⚠️  No search provider configured")
	}
	fmt.Println()

	var caseCount int
	err = db.QueryRow("SELECT COUNT(*) FROM cases").Scan(&caseCount)
	if err != nil {
		fmt.Println("❌ No cases table found (no analysis run yet)")
		return
	}
	fmt.Printf("🗂  Total cases: %d\n\n", caseCount)

	rows, err := db.Query(`
		SELECT case_id, created_at, notes, geolocation, queries, ai_insights
		FROM cases
		ORDER BY created_at DESC
		LIMIT 5
	`)
	if err != nil {
		log.Fatal("Failed to query cases:", err)
	}
	defer rows.Close()

	fmt.Println("📊 Recent Cases:")
	fmt.Println("----------------")

	count := 0
	for rows.Next() {
		var caseID, createdAt, notes, geolocationJSON, queriesJSON, insights string

		if err := rows.Scan(&caseID, &createdAt, &notes, &geolocationJSON, &queriesJSON, &insights); err != nil {
			log.Printf("Error scanning row: %v", err)
			continue
		}

		count++
		fmt.Printf("\n🗂  Case %s (%s)\n", caseID, createdAt)

		if notes != "" {
			fmt.Printf("   📝 Notes: %.80s\n", notes)
		}

		var location struct {
			Latitude  *float64 `json:"latitude"`
			Longitude *float64 `json:"longitude"`
			Info      string   `json:"info"`
		}
		if err := json.Unmarshal([]byte(geolocationJSON), &location); err == nil {
			if location.Latitude != nil && location.Longitude != nil {
				fmt.Printf("   📍 Location: %.5f, %.5f\n", *location.Latitude, *location.Longitude)
			} else if location.Info != "" {
				fmt.Printf("   📍 Location: %s\n", location.Info)
			}
		}

		var queries []string
		if err := json.Unmarshal([]byte(queriesJSON), &queries); err == nil && len(queries) > 0 {
			fmt.Printf("   🔎 Queries: ")
			for i, q := range queries {
				if i > 0 {
					fmt.Print(", ")
				}
				fmt.Print(q)
				if i >= 2 {
					fmt.Print("...")
					break
				}
			}
			fmt.Println()
		}

		if insights != "" {
			fmt.Printf("   💡 Insights: %.100s\n", insights)
		}
	}

	if count == 0 {
		fmt.Println("No cases found yet. Upload an image to analyze!")
	} else {
		fmt.Printf("\n✅ Found %d recent case(s).\n", count)
	}
}
