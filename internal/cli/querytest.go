package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/YuriyDyachuk/hotel-booking-system/internal/database"
)

var queryLogFile string

// testQuery is one canned analytical query exercised against the
// seeded dataset.
type testQuery struct {
	name  string
	sql   string
	args  []any
	fetch bool // iterate and count the result rows
}

var testQueries = []testQuery{
	{
		name:  "Simple SELECT",
		sql:   "SELECT id FROM hotels LIMIT 10",
		fetch: true,
	},
	{
		name: "Complex JOIN",
		sql: `SELECT h.id, h.name, c.name AS city, co.name AS country,
		             COUNT(r.id) AS total_rooms, h.rating
		      FROM hotels h
		      JOIN cities c ON h.city_id = c.id
		      JOIN countries co ON c.country_id = co.id
		      LEFT JOIN rooms r ON h.id = r.hotel_id
		      WHERE h.is_active = 1
		      GROUP BY h.id
		      LIMIT 10`,
		fetch: true,
	},
	{
		name: "Available rooms search",
		sql: `SELECT h.id AS hotel_id, h.name AS hotel_name, h.stars, h.rating,
		             r.id AS room_id, r.room_number, r.base_price, rt.name AS room_type
		      FROM rooms r
		      JOIN hotels h ON r.hotel_id = h.id
		      JOIN cities c ON h.city_id = c.id
		      JOIN room_types rt ON r.room_type_id = rt.id
		      LEFT JOIN bookings b ON r.id = b.room_id
		          AND b.status IN ('confirmed', 'pending')
		          AND NOT (b.check_out <= ? OR b.check_in >= ?)
		      WHERE c.name = ?
		        AND r.is_available = TRUE
		        AND h.is_active = TRUE
		        AND b.id IS NULL
		      ORDER BY h.rating DESC, r.base_price ASC
		      LIMIT 20`,
		args:  []any{"2026-06-01", "2026-06-05", "Kyiv"},
		fetch: true,
	},
	{
		name: "Hotel statistics by month",
		sql: `SELECT DATE_FORMAT(b.check_in, '%Y-%m') AS month,
		             COUNT(DISTINCT b.id) AS total_bookings,
		             COUNT(DISTINCT CASE WHEN b.status = 'confirmed' THEN b.id END) AS confirmed_bookings,
		             SUM(b.total_price) AS total_revenue,
		             AVG(b.total_price) AS avg_booking_price,
		             AVG(DATEDIFF(b.check_out, b.check_in)) AS avg_nights
		      FROM bookings b
		      JOIN rooms r ON b.room_id = r.id
		      WHERE r.hotel_id = ?
		        AND b.check_in >= DATE_SUB(CURDATE(), INTERVAL 6 MONTH)
		        AND b.status != 'cancelled'
		      GROUP BY month
		      ORDER BY month DESC`,
		args:  []any{1},
		fetch: true,
	},
	{
		name: "Top spending users",
		sql: `SELECT u.id, u.email, u.first_name, u.last_name,
		             COUNT(b.id) AS total_bookings,
		             SUM(b.total_price) AS total_spent,
		             AVG(b.total_price) AS avg_per_booking,
		             MAX(b.check_in) AS last_booking_date
		      FROM users u
		      JOIN bookings b ON u.id = b.user_id
		      WHERE b.status IN ('confirmed', 'completed')
		        AND b.payment_status = 'paid'
		      GROUP BY u.id
		      HAVING total_bookings >= 3
		      ORDER BY total_spent DESC
		      LIMIT 10`,
		fetch: true,
	},
}

var queryTestCmd = &cobra.Command{
	Use:   "querytest",
	Short: "Explain and time a set of analytical queries against the seeded data",
	Long: `Runs five representative analytical queries, printing the EXPLAIN plan
and execution timing for each, followed by aggregate query statistics.
Purely observational: no data is modified.`,
	RunE: runQueryTest,
}

func init() {
	rootCmd.AddCommand(queryTestCmd)
	queryTestCmd.Flags().StringVar(&queryLogFile, "out", "", "Also save the detailed query log to this file")
}

func runQueryTest(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	logger := database.NewLogger(db)
	ctx := context.Background()

	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("QUERY TESTING AND ANALYSIS")
	fmt.Println(strings.Repeat("=", 80))

	for i, tq := range testQueries {
		fmt.Printf("\nTEST %d: %s\n", i+1, tq.name)
		fmt.Println(strings.Repeat("-", 80))

		if err := database.Explain(ctx, os.Stdout, db, tq.sql, tq.args...); err != nil {
			return err
		}

		start := time.Now()
		rows, err := logger.Query(ctx, tq.sql, tq.args...)
		if err != nil {
			return fmt.Errorf("test %q: %w", tq.name, err)
		}
		count := 0
		if tq.fetch {
			for rows.Next() {
				count++
			}
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return err
		}
		rows.Close()

		fmt.Printf("Returned rows: %d (%.2f ms)\n", count,
			float64(time.Since(start).Microseconds())/1000)
	}

	fmt.Println()
	logger.PrintStats(os.Stdout)
	logger.PrintDetailed(os.Stdout)

	if queryLogFile != "" {
		if err := logger.SaveToFile(queryLogFile); err != nil {
			return err
		}
		fmt.Printf("Query log saved to: %s\n", queryLogFile)
	}
	return nil
}
