package routes

import (
	"github.com/Dhunu/vigovia/itinerary"
	"github.com/Dhunu/vigovia/preview"
	"github.com/Dhunu/vigovia/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddItineraryRoutes(router *httprouter.Router, api *itinerary.API, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/itinerary", api.GetItinerary)                                                  // Current builder state
	router.PUT("/api/itinerary/field", rateLimiter.Limit(api.SetField))                             // Top-level scalar fields
	router.POST("/api/itinerary/days/:day/activities", rateLimiter.Limit(api.AddActivity))          // Add a blank activity
	router.PUT("/api/itinerary/days/:day/activities/:id", rateLimiter.Limit(api.UpdateActivity))    // Update one activity field
	router.DELETE("/api/itinerary/days/:day/activities/:id", rateLimiter.Limit(api.RemoveActivity)) // Remove an activity
	router.POST("/api/itinerary/days/:day/transfers", rateLimiter.Limit(api.AddTransfer))           // Add a blank transfer
	router.PUT("/api/itinerary/days/:day/transfers/:id", rateLimiter.Limit(api.UpdateTransfer))     // Update one transfer field
	router.DELETE("/api/itinerary/days/:day/transfers/:id", rateLimiter.Limit(api.RemoveTransfer))  // Remove a transfer
	router.POST("/api/itinerary/flights", rateLimiter.Limit(api.AddFlight))                         // Add a blank flight
	router.PUT("/api/itinerary/flights/:id", rateLimiter.Limit(api.UpdateFlight))                   // Update one flight field
	router.DELETE("/api/itinerary/flights/:id", rateLimiter.Limit(api.RemoveFlight))                // Remove a flight
	router.GET("/api/itinerary/step", api.GetStep)                                                  // Current step
	router.POST("/api/itinerary/step/next", api.NextStep)                                           // Advance (gated)
	router.POST("/api/itinerary/step/prev", api.PrevStep)                                           // Go back
	router.POST("/api/itinerary/finalize", api.Finalize)                                            // Total + preview handoff
}

func AddPreviewRoutes(router *httprouter.Router, renderer *preview.Renderer) {
	router.GET("/preview", renderer.Page)    // Print-styled document
	router.GET("/preview/pdf", renderer.PDF) // PDF download
}
