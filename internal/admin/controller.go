package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	AdminService AdminServiceAPI
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func pageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 200 {
		pageSize = 20
	}
	return page, pageSize
}

func optionalQuery(c *gin.Context, key string) *string {
	if v, ok := c.GetQuery(key); ok {
		return &v
	}
	return nil
}

func writeErr(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// ---- lawyers ----

func (ac *AdminController) ListLawyers(c *gin.Context) {
	page, pageSize := pageParams(c)

	rows, total, err := ac.AdminService.ListLawyers(c.Query("search"), page, pageSize)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows, "total": total, "page": page, "pageSize": pageSize})
}

func (ac *AdminController) CreateLawyer(c *gin.Context) {
	var req LawyerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := ac.AdminService.CreateLawyer(req)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": row})
}

func (ac *AdminController) UpdateLawyer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req LawyerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := ac.AdminService.UpdateLawyer(id, req)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": row})
}

func (ac *AdminController) DeleteLawyer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ac.AdminService.DeleteLawyer(id); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (ac *AdminController) ExportLawyers(c *gin.Context) {
	filename, data, err := ac.AdminService.ExportLawyersXLSX()
	if err != nil {
		writeErr(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (ac *AdminController) ListFallbackLawyers(c *gin.Context) {
	rows, err := ac.AdminService.ListFallbackLawyers()
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (ac *AdminController) SetFallbackLawyers(c *gin.Context) {
	var req []FallbackLawyerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rows, err := ac.AdminService.SetFallbackLawyers(req)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// ---- law firms ----

func (ac *AdminController) ListLawFirms(c *gin.Context) {
	rows, err := ac.AdminService.ListLawFirms(c.Query("search"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (ac *AdminController) CreateLawFirm(c *gin.Context) {
	var req LawFirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := ac.AdminService.CreateLawFirm(req)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": row})
}

func (ac *AdminController) UpdateLawFirm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req LawFirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := ac.AdminService.UpdateLawFirm(id, req)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": row})
}

func (ac *AdminController) DeleteLawFirm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ac.AdminService.DeleteLawFirm(id); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// ---- dmas ----

func (ac *AdminController) CreateDMA(c *gin.Context) {
	var req DMARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := ac.AdminService.CreateDMA(req)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": row})
}

func (ac *AdminController) UpdateDMA(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req DMARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := ac.AdminService.UpdateDMA(id, req)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": row})
}

func (ac *AdminController) DeleteDMA(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ac.AdminService.DeleteDMA(id); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (ac *AdminController) AssignZipCodes(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req AssignZipCodesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	assigned, err := ac.AdminService.AssignZipCodes(id, req.ZipCodes)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "assigned", "count": assigned})
}

func (ac *AdminController) RemoveZipCode(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	code := c.Param("zip")
	if err := ac.AdminService.RemoveZipCode(id, code); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "removed"})
}

// ---- zip codes ----

func (ac *AdminController) ListZipCodes(c *gin.Context) {
	page, pageSize := pageParams(c)

	rows, total, err := ac.AdminService.ListZipCodes(c.Query("search"), page, pageSize)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows, "total": total, "page": page, "pageSize": pageSize})
}

func (ac *AdminController) CreateZipCode(c *gin.Context) {
	var req ZipCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := ac.AdminService.CreateZipCode(req)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": row})
}

func (ac *AdminController) DeleteZipCode(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ac.AdminService.DeleteZipCode(id); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// ---- subscription types ----

func (ac *AdminController) CreateSubscriptionType(c *gin.Context) {
	var req SubscriptionTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := ac.AdminService.CreateSubscriptionType(req)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": row})
}

func (ac *AdminController) UpdateSubscriptionType(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req SubscriptionTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := ac.AdminService.UpdateSubscriptionType(id, req)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": row})
}

func (ac *AdminController) DeleteSubscriptionType(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ac.AdminService.DeleteSubscriptionType(id); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// ---- subscription limits ----

func (ac *AdminController) ListSubscriptionLimits(c *gin.Context) {
	rows, err := ac.AdminService.ListSubscriptionLimits()
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (ac *AdminController) UpsertSubscriptionLimit(c *gin.Context) {
	var req SubscriptionLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := ac.AdminService.UpsertSubscriptionLimit(req)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": row})
}

func (ac *AdminController) DeleteSubscriptionLimit(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ac.AdminService.DeleteSubscriptionLimit(id); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (ac *AdminController) CheckLimits(c *gin.Context) {
	zip := c.Query("zipCode")
	if zip == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "zipCode is required"})
		return
	}
	result, err := ac.AdminService.CheckLimits(c.Request.Context(), zip)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ---- tier overrides ----

func (ac *AdminController) ListTierOverrides(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	rows, err := ac.AdminService.ListTierOverrides(id)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (ac *AdminController) UpsertTierOverride(c *gin.Context) {
	var req TierOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := ac.AdminService.UpsertTierOverride(req)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": row})
}

func (ac *AdminController) DeleteTierOverride(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ac.AdminService.DeleteTierOverride(id); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// ---- plans ----

func (ac *AdminController) ListPlans(c *gin.Context) {
	rows, err := ac.AdminService.ListPlans()
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (ac *AdminController) CreatePlan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := ac.AdminService.CreatePlan(req)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": row})
}

func (ac *AdminController) UpdatePlan(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := ac.AdminService.UpdatePlan(id, req)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": row})
}

func (ac *AdminController) DeletePlan(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ac.AdminService.DeletePlan(id); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (ac *AdminController) SetPlanFeatures(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req []PlanFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rows, err := ac.AdminService.SetPlanFeatures(id, req)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (ac *AdminController) UpsertPlanDMAOverride(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req PlanDMAOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := ac.AdminService.UpsertPlanDMAOverride(id, req)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": row})
}

func (ac *AdminController) DeletePlanDMAOverride(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ac.AdminService.DeletePlanDMAOverride(id); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// ---- contact submissions ----

func (ac *AdminController) ListContactSubmissions(c *gin.Context) {
	rows, err := ac.AdminService.ListContactSubmissions(c.Query("status"), optionalQuery(c, "from"), optionalQuery(c, "to"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (ac *AdminController) UpdateContactStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ac.AdminService.UpdateContactStatus(id, req.Status); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}
