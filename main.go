package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/idamrohim/cgv-promo/cache"
	"github.com/idamrohim/cgv-promo/client"
	"github.com/idamrohim/cgv-promo/debuglog"
	"github.com/idamrohim/cgv-promo/entities"
	"github.com/idamrohim/cgv-promo/fetchschedules"
	"github.com/idamrohim/cgv-promo/header"
	"github.com/idamrohim/cgv-promo/order"
	"github.com/idamrohim/cgv-promo/persistence"
	"github.com/idamrohim/cgv-promo/pricing"
	"github.com/idamrohim/cgv-promo/seatmap"
)

const maxTickets = 20

func main() {
	// Parse command line flags
	cmd := flag.String("cmd", "promo", "command to run: promo, scan, seats, order")
	price := flag.String("price", "", "ticket price, free-form (e.g. 40rb, Rp 40.000, 40k)")
	tickets := flag.Int("tickets", 2, "number of tickets")
	table := flag.String("table", "order", "pair price table: order or calculator")
	showTime := flag.String("time", "", "show time HH:MM, switches to the time-based promo")
	movieID := flag.String("movie", "", "movie id to scan")
	locationID := flag.String("location", "", "location id to scan")
	upcoming := flag.Bool("upcoming", false, "scan the extended window for an unreleased movie")
	scheduleID := flag.String("schedule", "", "schedule id for the seats command")
	writeFile := flag.Bool("write", false, "write scan results to a snapshot file")
	debug := flag.Bool("debug", false, "export the diagnostic event log on exit")

	cinemaName := flag.String("cinema", "", "cinema name for the order")
	locationName := flag.String("area", "", "area/location name for the order")
	date := flag.String("date", "", "show date YYYYMMDD for the order")
	movieName := flag.String("title", "", "movie title for the order")
	auditorium := flag.String("studio", "", "auditorium name for the order")
	mainSeats := flag.String("seats", "", "main seat choices for the order (e.g. C5, C6)")
	backupSeats := flag.String("backup", "", "backup seat choices for the order")

	flag.Parse()

	if *tickets < 1 || *tickets > maxTickets {
		fmt.Printf("Ticket count must be between 1 and %d\n", maxTickets)
		os.Exit(1)
	}

	var sink debuglog.Sink = debuglog.Nop{}
	var recorder *debuglog.Recorder
	if *debug {
		recorder = debuglog.NewRecorder()
		sink = recorder
	}

	ctx := context.Background()
	var err error
	switch *cmd {
	case "promo":
		err = runPromo(*price, *tickets, *table, *showTime)
	case "scan":
		status := entities.StatusPlaying
		if *upcoming {
			status = entities.StatusUpcoming
		}
		err = runScan(ctx, sink, *movieID, *locationID, status, *writeFile)
	case "seats":
		err = runSeats(ctx, sink, *scheduleID, *price)
	case "order":
		err = runOrder(&order.Order{
			CinemaName:     *cinemaName,
			LocationName:   *locationName,
			Date:           *date,
			MovieName:      *movieName,
			ShowTime:       *showTime,
			AuditoriumName: *auditorium,
			TicketCount:    *tickets,
			MainSeats:      *mainSeats,
			BackupSeats:    *backupSeats,
			UnitPrice:      mustParsePrice(*price),
		})
	default:
		fmt.Println("Unknown command:", *cmd)
		flag.Usage()
		os.Exit(1)
	}

	if recorder != nil {
		if name, exportErr := recorder.Export(); exportErr == nil {
			fmt.Println("🪵 Debug log written to", name)
		}
	}
	if err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

func mustParsePrice(raw string) int {
	if raw == "" {
		return 0
	}
	parsed, err := pricing.ParsePrice(raw)
	if err != nil {
		return 0
	}
	return parsed
}

func runPromo(rawPrice string, tickets int, table, showTime string) error {
	unitPrice, err := pricing.ParsePrice(rawPrice)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", rawPrice, err)
	}

	if showTime != "" {
		promo, err := pricing.ComputeTimeBasedPromo(unitPrice, tickets, showTime)
		if err != nil {
			return err
		}
		fmt.Printf("🎟️  %d ticket(s) at %s, show at %s\n", tickets, pricing.FormatRupiah(unitPrice), showTime)
		fmt.Println("Total Normal:", pricing.FormatRupiah(promo.Normal))
		fmt.Println("Total Promo: ", pricing.FormatRupiah(promo.Promo))
		fmt.Println("Hemat:       ", pricing.FormatRupiah(promo.Saved))
		return nil
	}

	pairTable := pricing.TableA
	if table == "calculator" {
		pairTable = pricing.TableB
	} else if table != "order" {
		return fmt.Errorf("unknown table %q: want order or calculator", table)
	}
	total := pricing.ComputePromoTotal(unitPrice, tickets, pairTable, pricing.FlatDiscount)
	fmt.Printf("🎟️  %d ticket(s) at %s\n", tickets, pricing.FormatRupiah(unitPrice))
	fmt.Println("Total Promo:", pricing.FormatRupiah(total))
	return nil
}

func runScan(ctx context.Context, sink debuglog.Sink, movieID, locationID string, status entities.MovieStatus, writeFile bool) error {
	if movieID == "" || locationID == "" {
		return fmt.Errorf("scan needs -movie and -location")
	}

	tokens := header.NewFromEnv()
	api := client.New(tokens, sink)
	scheduleCache := cache.NewScheduleCache(cache.NewRedisClient())

	var store persistence.Persistence
	if pool, err := persistence.NewPostgresPool(ctx); err == nil {
		if err := persistence.InitPostgresSchema(ctx, pool); err != nil {
			fmt.Println("⚠️ Failed to init postgres schema:", err)
		}
		store = persistence.NewPostgresPersistence(pool)
		defer pool.Close()
	} else {
		store = persistence.NewFilePersistence("scan_log.json")
	}

	index, err := fetchschedules.RunFetchSchedules(ctx, &fetchschedules.FetchSchedulesOptions{
		MovieID:     movieID,
		LocationID:  locationID,
		Status:      status,
		Client:      api,
		Sink:        sink,
		Cache:       scheduleCache,
		Persistence: store,
		WriteFile:   writeFile,
	})
	if err != nil {
		return err
	}

	if len(index) == 0 {
		fmt.Println("No schedules found in the scan window")
		return nil
	}
	fmt.Printf("📅 Schedules on %d date(s):\n", len(index))
	for _, date := range index.Dates() {
		fmt.Printf("  %s\n", order.DisplayDate(date))
		for _, schedule := range index[date] {
			fmt.Printf("    %s  %s (%s)  %s  %d/%d seats\n",
				schedule.StartTime,
				schedule.AuditoriumName,
				schedule.AuditoriumTypeName,
				pricing.FormatRupiah(schedule.Price),
				schedule.RemainingSeatCount,
				schedule.TotalSeatCount,
			)
		}
	}
	return nil
}

func runSeats(ctx context.Context, sink debuglog.Sink, scheduleID, rawPrice string) error {
	if scheduleID == "" {
		return fmt.Errorf("seats needs -schedule")
	}

	tokens := header.NewFromEnv()
	api := client.New(tokens, sink)

	payload, err := api.GetSeats(ctx, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to fetch seats: %w", err)
	}

	seats := seatmap.Normalize(payload, mustParsePrice(rawPrice))
	rows := seatmap.GroupByRow(seats)
	if len(rows) == 0 {
		fmt.Println("No seats in the response")
		return nil
	}

	for _, row := range rows {
		var cells []string
		for _, seat := range row.Seats {
			switch {
			case !seat.IsSeat:
				cells = append(cells, "  ")
			case seat.IsAvailable:
				cells = append(cells, seat.Label())
			default:
				cells = append(cells, "[x]")
			}
		}
		fmt.Printf("%s  %s\n", row.Name, strings.Join(cells, " "))
	}
	fmt.Printf("💺 %d of %d seats available\n", seatmap.CountAvailable(seats), len(seats))
	return nil
}

func runOrder(o *order.Order) error {
	message, err := o.Message()
	if err != nil {
		return err
	}
	link, err := o.WhatsAppURL()
	if err != nil {
		return err
	}
	fmt.Println(message)
	fmt.Println()
	fmt.Println("📨 Send via:", link)
	return nil
}
