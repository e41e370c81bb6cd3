package itinerary

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Dhunu/vigovia/handoff"
	"github.com/Dhunu/vigovia/utils"

	"github.com/julienschmidt/httprouter"
)

// API exposes one builder over HTTP.
type API struct {
	builder *Builder
	baseURL string
}

func NewAPI(builder *Builder, baseURL string) *API {
	return &API{builder: builder, baseURL: baseURL}
}

type fieldUpdate struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

func dayIndex(ps httprouter.Params) (int, bool) {
	i, err := strconv.Atoi(ps.ByName("day"))
	return i, err == nil
}

// GET /api/itinerary
func (api *API) GetItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, api.builder.Snapshot())
}

// PUT /api/itinerary/field
func (api *API) SetField(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var upd fieldUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	value, _ := upd.Value.(string)
	if err := api.builder.SetField(upd.Field, value); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, api.builder.Snapshot())
}

// POST /api/itinerary/days/:day/activities
func (api *API) AddActivity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	day, ok := dayIndex(ps)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid day index")
		return
	}
	activity, err := api.builder.AddActivity(day)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, activity)
}

// PUT /api/itinerary/days/:day/activities/:id
func (api *API) UpdateActivity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	day, ok := dayIndex(ps)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid day index")
		return
	}
	var upd fieldUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := api.builder.UpdateActivity(day, ps.ByName("id"), upd.Field, upd.Value); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Activity updated"})
}

// DELETE /api/itinerary/days/:day/activities/:id
func (api *API) RemoveActivity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	day, ok := dayIndex(ps)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid day index")
		return
	}
	if err := api.builder.RemoveActivity(day, ps.ByName("id")); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Activity removed"})
}

// POST /api/itinerary/days/:day/transfers
func (api *API) AddTransfer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	day, ok := dayIndex(ps)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid day index")
		return
	}
	transfer, err := api.builder.AddTransfer(day)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, transfer)
}

// PUT /api/itinerary/days/:day/transfers/:id
func (api *API) UpdateTransfer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	day, ok := dayIndex(ps)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid day index")
		return
	}
	var upd fieldUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := api.builder.UpdateTransfer(day, ps.ByName("id"), upd.Field, upd.Value); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Transfer updated"})
}

// DELETE /api/itinerary/days/:day/transfers/:id
func (api *API) RemoveTransfer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	day, ok := dayIndex(ps)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid day index")
		return
	}
	if err := api.builder.RemoveTransfer(day, ps.ByName("id")); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Transfer removed"})
}

// POST /api/itinerary/flights
func (api *API) AddFlight(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusCreated, api.builder.AddFlight())
}

// PUT /api/itinerary/flights/:id
func (api *API) UpdateFlight(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var upd fieldUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	api.builder.UpdateFlight(ps.ByName("id"), upd.Field, upd.Value)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Flight updated"})
}

// DELETE /api/itinerary/flights/:id
func (api *API) RemoveFlight(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	api.builder.RemoveFlight(ps.ByName("id"))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Flight removed"})
}

// GET /api/itinerary/step
func (api *API) GetStep(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"step": api.builder.Step()})
}

// POST /api/itinerary/step/next
func (api *API) NextStep(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	step, err := api.builder.NextStep()
	if err != nil {
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"step": step})
}

// POST /api/itinerary/step/prev
func (api *API) PrevStep(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"step": api.builder.PrevStep()})
}

// POST /api/itinerary/finalize
func (api *API) Finalize(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	it := api.builder.Finalize()
	previewURL, err := handoff.PreviewURL(api.baseURL, it)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error encoding itinerary")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"previewUrl": previewURL,
		"totalPrice": it.TotalPrice,
	})
}
