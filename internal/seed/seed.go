package seed

import (
	"context"
	"log/slog"

	"github.com/skyfare/api/internal/models"
)

// SampleFlights is the initial data set loaded when the flights collection
// is empty.
func SampleFlights() []*models.Flight {
	return []*models.Flight{
		{
			FlightNumber: "AI101",
			Airline:      "Air India",
			Departure:    models.Segment{City: "Mumbai", Airport: "BOM", Time: "10:00 AM", Date: "2024-01-15"},
			Arrival:      models.Segment{City: "Delhi", Airport: "DEL", Time: "12:00 PM", Date: "2024-01-15"},
			Price:        5000,
			Duration:     "2h",
			Seats:        models.SeatCounts{Economy: 120, Business: 30, First: 10},
			Aircraft:     "Boeing 787",
			Status:       models.FlightOnTime,
		},
		{
			FlightNumber: "6E202",
			Airline:      "IndiGo",
			Departure:    models.Segment{City: "Delhi", Airport: "DEL", Time: "2:00 PM", Date: "2024-01-15"},
			Arrival:      models.Segment{City: "Bangalore", Airport: "BLR", Time: "4:30 PM", Date: "2024-01-15"},
			Price:        4500,
			Duration:     "2h 30m",
			Seats:        models.SeatCounts{Economy: 150, Business: 20, First: 8},
			Aircraft:     "Airbus A320",
			Status:       models.FlightOnTime,
		},
		{
			FlightNumber: "SG303",
			Airline:      "SpiceJet",
			Departure:    models.Segment{City: "Chennai", Airport: "MAA", Time: "8:00 AM", Date: "2024-01-15"},
			Arrival:      models.Segment{City: "Kolkata", Airport: "CCU", Time: "10:15 AM", Date: "2024-01-15"},
			Price:        3800,
			Duration:     "2h 15m",
			Seats:        models.SeatCounts{Economy: 100, Business: 15, First: 5},
			Aircraft:     "Boeing 737",
			Status:       models.FlightDelayed,
		},
		{
			FlightNumber: "UK404",
			Airline:      "Vistara",
			Departure:    models.Segment{City: "Hyderabad", Airport: "HYD", Time: "11:30 AM", Date: "2024-01-15"},
			Arrival:      models.Segment{City: "Pune", Airport: "PNQ", Time: "12:45 PM", Date: "2024-01-15"},
			Price:        3200,
			Duration:     "1h 15m",
			Seats:        models.SeatCounts{Economy: 80, Business: 12, First: 6},
			Aircraft:     "Airbus A320",
			Status:       models.FlightOnTime,
		},
	}
}

// ExtraFlights is the supplementary data set applied by GET /api/seed/flights.
// Entries are keyed by flight number and upserted, so the endpoint is safe to
// call repeatedly.
func ExtraFlights() []*models.Flight {
	return []*models.Flight{
		{
			FlightNumber: "AI205",
			Airline:      "Air India",
			Departure:    models.Segment{City: "Delhi", Airport: "DEL", Time: "06:30 AM", Date: "2024-01-16"},
			Arrival:      models.Segment{City: "Mumbai", Airport: "BOM", Time: "08:40 AM", Date: "2024-01-16"},
			Price:        5200,
			Duration:     "2h 10m",
			Seats:        models.SeatCounts{Economy: 140, Business: 20, First: 6},
			Aircraft:     "Airbus A321",
			Status:       models.FlightOnTime,
		},
		{
			FlightNumber: "6E415",
			Airline:      "IndiGo",
			Departure:    models.Segment{City: "Bangalore", Airport: "BLR", Time: "09:15 AM", Date: "2024-01-16"},
			Arrival:      models.Segment{City: "Hyderabad", Airport: "HYD", Time: "10:25 AM", Date: "2024-01-16"},
			Price:        3100,
			Duration:     "1h 10m",
			Seats:        models.SeatCounts{Economy: 160},
			Aircraft:     "Airbus A320",
			Status:       models.FlightOnTime,
		},
		{
			FlightNumber: "UK709",
			Airline:      "Vistara",
			Departure:    models.Segment{City: "Pune", Airport: "PNQ", Time: "01:40 PM", Date: "2024-01-16"},
			Arrival:      models.Segment{City: "Delhi", Airport: "DEL", Time: "03:50 PM", Date: "2024-01-16"},
			Price:        5400,
			Duration:     "2h 10m",
			Seats:        models.SeatCounts{Economy: 110, Business: 16, First: 4},
			Aircraft:     "Boeing 737",
			Status:       models.FlightOnTime,
		},
		{
			FlightNumber: "SG812",
			Airline:      "SpiceJet",
			Departure:    models.Segment{City: "Kolkata", Airport: "CCU", Time: "07:20 PM", Date: "2024-01-16"},
			Arrival:      models.Segment{City: "Chennai", Airport: "MAA", Time: "09:35 PM", Date: "2024-01-16"},
			Price:        3950,
			Duration:     "2h 15m",
			Seats:        models.SeatCounts{Economy: 120, Business: 12},
			Aircraft:     "Boeing 737",
			Status:       models.FlightDelayed,
		},
		{
			FlightNumber: "G8401",
			Airline:      "Go First",
			Departure:    models.Segment{City: "Ahmedabad", Airport: "AMD", Time: "10:10 AM", Date: "2024-01-16"},
			Arrival:      models.Segment{City: "Mumbai", Airport: "BOM", Time: "11:15 AM", Date: "2024-01-16"},
			Price:        2600,
			Duration:     "1h 05m",
			Seats:        models.SeatCounts{Economy: 170},
			Aircraft:     "Airbus A320",
			Status:       models.FlightOnTime,
		},
		{
			FlightNumber: "QF302",
			Airline:      "Akasa Air",
			Departure:    models.Segment{City: "Delhi", Airport: "DEL", Time: "05:45 AM", Date: "2024-01-17"},
			Arrival:      models.Segment{City: "Bangalore", Airport: "BLR", Time: "08:15 AM", Date: "2024-01-17"},
			Price:        4800,
			Duration:     "2h 30m",
			Seats:        models.SeatCounts{Economy: 180},
			Aircraft:     "Boeing 737 MAX",
			Status:       models.FlightOnTime,
		},
		{
			FlightNumber: "AI560",
			Airline:      "Air India",
			Departure:    models.Segment{City: "Hyderabad", Airport: "HYD", Time: "08:00 PM", Date: "2024-01-17"},
			Arrival:      models.Segment{City: "Mumbai", Airport: "BOM", Time: "09:20 PM", Date: "2024-01-17"},
			Price:        3500,
			Duration:     "1h 20m",
			Seats:        models.SeatCounts{Economy: 150, Business: 20, First: 6},
			Aircraft:     "Airbus A320",
			Status:       models.FlightOnTime,
		},
		{
			FlightNumber: "UK223",
			Airline:      "Vistara",
			Departure:    models.Segment{City: "Chandigarh", Airport: "IXC", Time: "11:30 AM", Date: "2024-01-17"},
			Arrival:      models.Segment{City: "Delhi", Airport: "DEL", Time: "12:25 PM", Date: "2024-01-17"},
			Price:        2200,
			Duration:     "55m",
			Seats:        models.SeatCounts{Economy: 100, Business: 12},
			Aircraft:     "Airbus A320",
			Status:       models.FlightOnTime,
		},
		{
			FlightNumber: "6E990",
			Airline:      "IndiGo",
			Departure:    models.Segment{City: "Goa", Airport: "GOI", Time: "03:10 PM", Date: "2024-01-17"},
			Arrival:      models.Segment{City: "Pune", Airport: "PNQ", Time: "04:25 PM", Date: "2024-01-17"},
			Price:        2800,
			Duration:     "1h 15m",
			Seats:        models.SeatCounts{Economy: 170},
			Aircraft:     "Airbus A320",
			Status:       models.FlightOnTime,
		},
		{
			FlightNumber: "SG555",
			Airline:      "SpiceJet",
			Departure:    models.Segment{City: "Jaipur", Airport: "JAI", Time: "07:45 AM", Date: "2024-01-18"},
			Arrival:      models.Segment{City: "Delhi", Airport: "DEL", Time: "08:45 AM", Date: "2024-01-18"},
			Price:        2100,
			Duration:     "1h",
			Seats:        models.SeatCounts{Economy: 120, Business: 8},
			Aircraft:     "Boeing 737",
			Status:       models.FlightOnTime,
		},
	}
}

// Bootstrap creates the unique indexes and loads the sample flights when the
// collection is empty. It runs once at process start.
func Bootstrap(ctx context.Context, flights models.FlightsRepo, bookings models.BookingsRepo, logger *slog.Logger) error {
	if err := flights.EnsureFlightIndexes(ctx); err != nil {
		return err
	}
	if err := bookings.EnsureBookingIndexes(ctx); err != nil {
		return err
	}

	count, err := flights.CountFlights(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := flights.InsertFlights(ctx, SampleFlights()); err != nil {
		return err
	}
	logger.Info("Sample flights initialized in database", "count", len(SampleFlights()))
	return nil
}
