package endpoint

import (
	"fmt"

	"github.com/clinicore/clinic-api/model"
	"github.com/clinicore/clinic-api/util"
	"github.com/gin-gonic/gin"
)

type createHospitalRequest struct {
	Name    string `json:"name" example:"General Hospital"`
	Address string `json:"address" example:"123 Main St"`
}

func validateHospitalRequest(req createHospitalRequest) error {
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(req.Name) > 100 {
		return fmt.Errorf("name must be at most 100 characters")
	}
	if req.Address == "" {
		return fmt.Errorf("address is required")
	}
	if len(req.Address) > 200 {
		return fmt.Errorf("address must be at most 200 characters")
	}
	return nil
}

// ListHospitals godoc
// @Summary      List all hospitals
// @Tags         Hospital
// @Produce      json
// @Success      200 {object} util.APIResponse{data=object} "Hospitals retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /hospital [get]
func ListHospitals(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}

	hospitals, err := hospitalService(db).List(c.Request.Context())
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve hospitals",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Hospitals retrieved",
		Data: map[string]interface{}{"total": len(hospitals), "hospitals": hospitals},
	})
}

// CreateHospital godoc
// @Summary      Create a new hospital
// @Tags         Hospital
// @Accept       json
// @Produce      json
// @Param        request body createHospitalRequest true "Hospital information"
// @Success      200 {object} util.APIResponse "Hospital created"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /hospital [post]
func CreateHospital(c *gin.Context) {
	hospitalRequest := createHospitalRequest{}

	if err := c.ShouldBindJSON(&hospitalRequest); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}

	hospitalRequest.Name = util.NormalizeName(hospitalRequest.Name)
	if err := validateHospitalRequest(hospitalRequest); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Hospital payload is empty or missing required fields",
			Err: err,
		})
		return
	}

	db, ok := ensureDB(c)
	if !ok {
		return
	}

	hospital := model.Hospital{
		Name:    hospitalRequest.Name,
		Address: hospitalRequest.Address,
	}

	id, err := hospitalService(db).Create(c.Request.Context(), &hospital)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to create hospital",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Hospital created",
		Data: map[string]interface{}{"id": id},
	})
}

// GetHospitalInfo godoc
// @Summary      Get hospital information
// @Tags         Hospital
// @Produce      json
// @Param        id path int true "Hospital ID"
// @Success      200 {object} util.APIResponse{data=model.Hospital} "Hospital retrieved"
// @Failure      404 {object} util.APIResponse "Hospital not found"
// @Router       /hospital/{id} [get]
func GetHospitalInfo(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	hospital, err := hospitalService(db).Get(c.Request.Context(), id)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve hospital",
			Err: err,
		})
		return
	}
	if hospital == nil {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: "Hospital not found",
			Err: fmt.Errorf("no hospital with id %d", id),
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Hospital retrieved",
		Data: hospital,
	})
}

// UpdateHospital godoc
// @Summary      Update hospital information
// @Tags         Hospital
// @Accept       json
// @Produce      json
// @Param        id path int true "Hospital ID"
// @Param        request body createHospitalRequest true "Updated hospital information"
// @Success      200 {object} util.APIResponse{data=model.Hospital} "Hospital updated"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      404 {object} util.APIResponse "Hospital not found"
// @Router       /hospital/{id} [patch]
func UpdateHospital(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	hospitalRequest := createHospitalRequest{}
	if err := c.ShouldBindJSON(&hospitalRequest); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}

	hospitalRequest.Name = util.NormalizeName(hospitalRequest.Name)
	if err := validateHospitalRequest(hospitalRequest); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Hospital payload is empty or missing required fields",
			Err: err,
		})
		return
	}

	svc := hospitalService(db)
	existing, err := svc.Get(c.Request.Context(), id)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve hospital",
			Err: err,
		})
		return
	}
	if existing == nil {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: "Hospital not found",
			Err: fmt.Errorf("no hospital with id %d", id),
		})
		return
	}

	existing.Name = hospitalRequest.Name
	existing.Address = hospitalRequest.Address

	if err := svc.Update(c.Request.Context(), existing); err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to update hospital",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Hospital updated",
		Data: existing,
	})
}

// DeleteHospital godoc
// @Summary      Delete a hospital
// @Description  Delete a hospital by ID; fails while appointments still reference it
// @Tags         Hospital
// @Produce      json
// @Param        id path int true "Hospital ID"
// @Success      200 {object} util.APIResponse "Hospital deleted"
// @Failure      500 {object} util.APIResponse "Constraint violation or server error"
// @Router       /hospital/{id} [delete]
func DeleteHospital(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	if err := hospitalService(db).Delete(c.Request.Context(), id); err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to delete hospital",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg: "Hospital deleted",
	})
}
