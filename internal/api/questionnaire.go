package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/ArmFinder/internal/questionnaire"
)

func Questionnaire(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, questionnaire.Form())
}
