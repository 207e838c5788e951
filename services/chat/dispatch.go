// File: services/chat/dispatch.go
package chat

import (
	"fmt"
	"strconv"
	"strings"

	"hotelbot/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

// Declarations describes the tool set to the model: name, purpose and the
// argument schema it must produce when invoking each tool.
func (t *BookingTools) Declarations() []*genai.FunctionDeclaration {
	return []*genai.FunctionDeclaration{
		{
			Name:        "searchHotels",
			Description: "Search for available hotels in a specific city. Returns a list of hotels with their details including name, price, and room type.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"city": {
						Type:        genai.TypeString,
						Description: "The city to search for hotels in (e.g., Chennai, Bangalore, Mumbai, Delhi, Goa)",
					},
					"maxPrice": {
						Type:        genai.TypeInteger,
						Description: "Optional maximum price per night in INR",
					},
					"roomType": {
						Type:        genai.TypeString,
						Description: "Optional room type filter: single, double, or suite",
					},
				},
				Required: []string{"city"},
			},
		},
		{
			Name:        "createBooking",
			Description: "Create a new hotel booking. Requires hotel name, city, check-in date, check-out date, and number of guests.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"hotelName": {
						Type:        genai.TypeString,
						Description: "Name of the hotel to book",
					},
					"city": {
						Type:        genai.TypeString,
						Description: "City where the hotel is located",
					},
					"checkInDate": {
						Type:        genai.TypeString,
						Description: "Check-in date in YYYY-MM-DD format",
					},
					"checkOutDate": {
						Type:        genai.TypeString,
						Description: "Check-out date in YYYY-MM-DD format",
					},
					"guests": {
						Type:        genai.TypeInteger,
						Description: "Number of guests",
					},
				},
				Required: []string{"hotelName", "city", "checkInDate", "checkOutDate", "guests"},
			},
		},
		{
			Name:        "modifyBooking",
			Description: "Modify an existing booking. Requires booking reference ID. Can update check-in date, check-out date, or number of guests.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"bookingReference": {
						Type:        genai.TypeString,
						Description: "Booking reference ID (e.g., HBK-2026-00123)",
					},
					"newCheckInDate": {
						Type:        genai.TypeString,
						Description: "New check-in date in YYYY-MM-DD format",
					},
					"newCheckOutDate": {
						Type:        genai.TypeString,
						Description: "New check-out date in YYYY-MM-DD format",
					},
					"newGuests": {
						Type:        genai.TypeInteger,
						Description: "New number of guests",
					},
				},
				Required: []string{"bookingReference"},
			},
		},
		{
			Name:        "cancelBooking",
			Description: "Cancel an existing hotel booking. Requires the booking reference ID.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"bookingReference": {
						Type:        genai.TypeString,
						Description: "Booking reference ID to cancel (e.g., HBK-2026-00123)",
					},
				},
				Required: []string{"bookingReference"},
			},
		},
		{
			Name:        "getBookingDetails",
			Description: "Get details of an existing booking using the booking reference ID.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"bookingReference": {
						Type:        genai.TypeString,
						Description: "Booking reference ID (e.g., HBK-2026-00123)",
					},
				},
				Required: []string{"bookingReference"},
			},
		},
	}
}

// Dispatch routes a model function call to the matching tool. It always
// returns text: unknown tools and internal panics are rendered as generic
// error lines so the model has something to answer with.
func (t *BookingTools) Dispatch(name string, args map[string]any) (result string) {
	defer func() {
		if r := recover(); r != nil {
			utils.GetLogger().Error("Tool dispatch panicked",
				zap.String("tool", name), zap.Any("panic", r))
			result = fmt.Sprintf("❌ An error occurred while handling the request: %v", r)
		}
	}()

	switch name {
	case "searchHotels":
		var maxPrice *int
		if v, ok := intArg(args, "maxPrice"); ok {
			maxPrice = &v
		}
		return t.SearchHotels(strArg(args, "city"), maxPrice, strArg(args, "roomType"))
	case "createBooking":
		guests, _ := intArg(args, "guests")
		return t.CreateBooking(
			strArg(args, "hotelName"),
			strArg(args, "city"),
			strArg(args, "checkInDate"),
			strArg(args, "checkOutDate"),
			guests,
		)
	case "modifyBooking":
		var newGuests *int
		if v, ok := intArg(args, "newGuests"); ok {
			newGuests = &v
		}
		return t.ModifyBooking(
			strArg(args, "bookingReference"),
			strArg(args, "newCheckInDate"),
			strArg(args, "newCheckOutDate"),
			newGuests,
		)
	case "cancelBooking":
		return t.CancelBooking(strArg(args, "bookingReference"))
	case "getBookingDetails":
		return t.GetBookingDetails(strArg(args, "bookingReference"))
	default:
		return "❌ Unknown tool: " + name
	}
}

func strArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

// intArg accepts the numeric shapes JSON decoding produces.
func intArg(args map[string]any, key string) (int, bool) {
	switch v := args[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n, true
		}
	}
	return 0, false
}
