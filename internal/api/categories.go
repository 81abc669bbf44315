package api

import (
	"net/http"

	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
)

func (a *Api) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := a.categories.GetCategories(r.Context(), a.db)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	resp, err := mapSlice(categories, func(c *model.Category) (*categoryResp, error) {
		return &categoryResp{ID: c.ID, Name: c.Name}, nil
	})
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
