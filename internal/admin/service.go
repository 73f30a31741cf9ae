package admin

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lib/pq"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"divorce-lawyers-api/internal/contact"
	"divorce-lawyers-api/internal/dma"
	"divorce-lawyers-api/internal/lawyer"
	"divorce-lawyers-api/internal/location"
	"divorce-lawyers-api/internal/subscription"
	"divorce-lawyers-api/internal/util"
)

var fiveDigitZip = regexp.MustCompile(`^\d{5}$`)

type AdminService struct {
	DB       *gorm.DB
	Resolver *dma.Resolver
	Ranker   *subscription.Ranker
	Contacts *contact.ContactService
}

// ==========================
// Lawyers
// ==========================

func (as *AdminService) ListLawyers(search string, page, pageSize int) ([]lawyer.Lawyer, int64, error) {
	q := as.DB.Model(&lawyer.Lawyer{})
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(first_name || ' ' || last_name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []lawyer.Lawyer
	if err := q.Preload("LawFirm").
		Order("last_name ASC, first_name ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (as *AdminService) CreateLawyer(req LawyerRequest) (*lawyer.Lawyer, error) {
	row := lawyerFromRequest(req)
	if row.Slug == "" {
		row.Slug = util.Slugify(req.FirstName + " " + req.LastName)
	}
	if row.SubscriptionType == "" {
		row.SubscriptionType = "free"
	}

	err := as.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		return replaceServiceAreas(tx, row.ID, req.ServiceAreaDMAs)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (as *AdminService) UpdateLawyer(id uint, req LawyerRequest) (*lawyer.Lawyer, error) {
	var existing lawyer.Lawyer
	if err := as.DB.First(&existing, id).Error; err != nil {
		return nil, err
	}

	row := lawyerFromRequest(req)
	row.ID = id
	if row.Slug == "" {
		row.Slug = existing.Slug
	}
	if row.SubscriptionType == "" {
		row.SubscriptionType = existing.SubscriptionType
	}

	err := as.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&existing).Select("*").Omit("id", "created_at").Updates(row).Error; err != nil {
			return err
		}
		if req.ServiceAreaDMAs != nil {
			return replaceServiceAreas(tx, id, req.ServiceAreaDMAs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (as *AdminService) DeleteLawyer(id uint) error {
	return as.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&lawyer.Lawyer{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("lawyer_id = ?", id).Delete(&lawyer.LawyerServiceArea{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lawyer_id = ?", id).Delete(&lawyer.FallbackLawyer{}).Error; err != nil {
			return err
		}
		return tx.Where("lawyer_id = ?", id).Delete(&subscription.LawyerDMASubscription{}).Error
	})
}

func (as *AdminService) ListFallbackLawyers() ([]lawyer.FallbackLawyer, error) {
	var rows []lawyer.FallbackLawyer
	err := as.DB.Preload("Lawyer").Order("display_order ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SetFallbackLawyers replaces the curated fallback list wholesale. Every
// referenced lawyer must exist.
func (as *AdminService) SetFallbackLawyers(entries []FallbackLawyerRequest) ([]lawyer.FallbackLawyer, error) {
	for _, e := range entries {
		var count int64
		if err := as.DB.Model(&lawyer.Lawyer{}).Where("id = ?", e.LawyerID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, fmt.Errorf("lawyer %d not found", e.LawyerID)
		}
	}

	var rows []lawyer.FallbackLawyer
	err := as.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&lawyer.FallbackLawyer{}).Error; err != nil {
			return err
		}
		for _, e := range entries {
			row := lawyer.FallbackLawyer{
				LawyerID:     e.LawyerID,
				DisplayOrder: e.DisplayOrder,
				Active:       true,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			rows = append(rows, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func lawyerFromRequest(req LawyerRequest) *lawyer.Lawyer {
	return &lawyer.Lawyer{
		FirstName:        strings.TrimSpace(req.FirstName),
		LastName:         strings.TrimSpace(req.LastName),
		Slug:             strings.TrimSpace(req.Slug),
		Title:            req.Title,
		Bio:              req.Bio,
		Email:            req.Email,
		Phone:            req.Phone,
		PhotoURL:         req.PhotoURL,
		BarNumber:        req.BarNumber,
		YearsExperience:  req.YearsExperience,
		OfficeZipCode:    strings.TrimSpace(req.OfficeZipCode),
		LawFirmID:        req.LawFirmID,
		SubscriptionType: req.SubscriptionType,
		Specializations:  pq.StringArray(req.Specializations),
		Languages:        pq.StringArray(req.Languages),
		BarAdmissions:    pq.StringArray(req.BarAdmissions),
	}
}

func replaceServiceAreas(tx *gorm.DB, lawyerID uint, dmaIDs []uint) error {
	if err := tx.Where("lawyer_id = ?", lawyerID).Delete(&lawyer.LawyerServiceArea{}).Error; err != nil {
		return err
	}
	for _, dmaID := range dmaIDs {
		area := lawyer.LawyerServiceArea{LawyerID: lawyerID, DMAID: dmaID}
		if err := tx.Create(&area).Error; err != nil {
			return err
		}
	}
	return nil
}

// ==========================
// Lawyers XLSX export
// ==========================

func (as *AdminService) ExportLawyersXLSX() (string, []byte, error) {
	var rows []lawyer.Lawyer
	if err := as.DB.Preload("LawFirm").
		Order("last_name ASC, first_name ASC").
		Find(&rows).Error; err != nil {
		return "", nil, err
	}

	f := excelize.NewFile()
	const sheet = "Lawyers"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E2E8F0"}},
	})

	header := []interface{}{
		excelize.Cell{Value: "id", StyleID: headerStyle},
		excelize.Cell{Value: "first_name", StyleID: headerStyle},
		excelize.Cell{Value: "last_name", StyleID: headerStyle},
		excelize.Cell{Value: "email", StyleID: headerStyle},
		excelize.Cell{Value: "phone", StyleID: headerStyle},
		excelize.Cell{Value: "office_zip_code", StyleID: headerStyle},
		excelize.Cell{Value: "law_firm", StyleID: headerStyle},
		excelize.Cell{Value: "subscription_type", StyleID: headerStyle},
		excelize.Cell{Value: "specializations", StyleID: headerStyle},
		excelize.Cell{Value: "years_experience", StyleID: headerStyle},
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return "", nil, err
	}

	for i, row := range rows {
		firmName := ""
		if row.LawFirm != nil {
			firmName = row.LawFirm.Name
		}
		years := ""
		if row.YearsExperience != nil {
			years = fmt.Sprintf("%d", *row.YearsExperience)
		}
		cells := []interface{}{
			row.ID,
			row.FirstName,
			row.LastName,
			row.Email,
			row.Phone,
			row.OfficeZipCode,
			firmName,
			row.SubscriptionType,
			strings.Join(row.Specializations, ", "),
			years,
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return "", nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", nil, err
	}
	return "lawyers.xlsx", buf.Bytes(), nil
}

// ==========================
// Law firms
// ==========================

func (as *AdminService) ListLawFirms(search string) ([]lawyer.LawFirm, error) {
	q := as.DB.Model(&lawyer.LawFirm{})
	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	var rows []lawyer.LawFirm
	if err := q.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (as *AdminService) CreateLawFirm(req LawFirmRequest) (*lawyer.LawFirm, error) {
	row := firmFromRequest(req)
	if row.Slug == "" {
		row.Slug = util.Slugify(req.Name)
	}
	if err := as.DB.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (as *AdminService) UpdateLawFirm(id uint, req LawFirmRequest) (*lawyer.LawFirm, error) {
	var existing lawyer.LawFirm
	if err := as.DB.First(&existing, id).Error; err != nil {
		return nil, err
	}

	row := firmFromRequest(req)
	row.ID = id
	if row.Slug == "" {
		row.Slug = existing.Slug
	}
	if err := as.DB.Model(&existing).Select("*").Omit("id", "created_at").Updates(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (as *AdminService) DeleteLawFirm(id uint) error {
	return as.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&lawyer.LawFirm{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		// detach lawyers rather than cascading
		return tx.Model(&lawyer.Lawyer{}).Where("law_firm_id = ?", id).
			Update("law_firm_id", nil).Error
	})
}

func firmFromRequest(req LawFirmRequest) *lawyer.LawFirm {
	return &lawyer.LawFirm{
		Name:     strings.TrimSpace(req.Name),
		Slug:     strings.TrimSpace(req.Slug),
		Address:  req.Address,
		Phone:    req.Phone,
		Email:    req.Email,
		Website:  req.Website,
		Rating:   req.Rating,
		Verified: req.Verified,
		Featured: req.Featured,
		ZipCode:  strings.TrimSpace(req.ZipCode),
		CityID:   req.CityID,
	}
}

// ==========================
// DMAs + zip assignment
// ==========================

func (as *AdminService) CreateDMA(req DMARequest) (*dma.DMA, error) {
	row := dma.DMA{Name: strings.TrimSpace(req.Name), Code: req.Code}
	if err := as.DB.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (as *AdminService) UpdateDMA(id uint, req DMARequest) (*dma.DMA, error) {
	var row dma.DMA
	if err := as.DB.First(&row, id).Error; err != nil {
		return nil, err
	}
	row.Name = strings.TrimSpace(req.Name)
	row.Code = req.Code
	if err := as.DB.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (as *AdminService) DeleteDMA(id uint) error {
	return as.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&dma.DMA{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("dma_id = ?", id).Delete(&dma.DMAZipCode{}).Error
	})
}

// AssignZipCodes maps zip codes into a market. Unknown zips get a zip_codes
// row created; a zip already mapped elsewhere is moved, since a zip belongs
// to at most one DMA.
func (as *AdminService) AssignZipCodes(dmaID uint, zips []string) (int, error) {
	var target dma.DMA
	if err := as.DB.First(&target, dmaID).Error; err != nil {
		return 0, err
	}

	assigned := 0
	err := as.DB.Transaction(func(tx *gorm.DB) error {
		for _, raw := range zips {
			code := strings.TrimSpace(raw)
			if !fiveDigitZip.MatchString(code) {
				return fmt.Errorf("invalid zip code %q", raw)
			}

			var zipRow location.ZipCode
			err := tx.Where("zip_code = ?", code).First(&zipRow).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				zipRow = location.ZipCode{Code: code}
				err = tx.Create(&zipRow).Error
			}
			if err != nil {
				return err
			}

			if err := tx.Where("zip_code_id = ?", zipRow.ID).Delete(&dma.DMAZipCode{}).Error; err != nil {
				return err
			}
			mapping := dma.DMAZipCode{DMAID: dmaID, ZipCodeID: zipRow.ID}
			if err := tx.Create(&mapping).Error; err != nil {
				return err
			}
			assigned++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return assigned, nil
}

func (as *AdminService) RemoveZipCode(dmaID uint, code string) error {
	subq := as.DB.Model(&location.ZipCode{}).Select("id").Where("zip_code = ?", code)
	res := as.DB.Where("dma_id = ? AND zip_code_id IN (?)", dmaID, subq).Delete(&dma.DMAZipCode{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ==========================
// Zip codes
// ==========================

func (as *AdminService) ListZipCodes(search string, page, pageSize int) ([]location.ZipCode, int64, error) {
	q := as.DB.Model(&location.ZipCode{})
	if search != "" {
		q = q.Where("zip_code LIKE ?", search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []location.ZipCode
	if err := q.Preload("City").Preload("City.State").
		Order("zip_code ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (as *AdminService) CreateZipCode(req ZipCodeRequest) (*location.ZipCode, error) {
	code := strings.TrimSpace(req.ZipCode)
	if !fiveDigitZip.MatchString(code) {
		return nil, fmt.Errorf("invalid zip code %q", req.ZipCode)
	}
	row := location.ZipCode{Code: code, CityID: req.CityID}
	if err := as.DB.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (as *AdminService) DeleteZipCode(id uint) error {
	return as.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&location.ZipCode{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("zip_code_id = ?", id).Delete(&dma.DMAZipCode{}).Error
	})
}

// ==========================
// Subscription types, limits, tier overrides
// ==========================

func (as *AdminService) CreateSubscriptionType(req SubscriptionTypeRequest) (*subscription.SubscriptionType, error) {
	row := subscription.SubscriptionType{
		Name:        strings.TrimSpace(req.Name),
		DisplayName: strings.TrimSpace(req.DisplayName),
		SortOrder:   req.SortOrder,
	}
	if err := as.DB.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (as *AdminService) UpdateSubscriptionType(id uint, req SubscriptionTypeRequest) (*subscription.SubscriptionType, error) {
	var row subscription.SubscriptionType
	if err := as.DB.First(&row, id).Error; err != nil {
		return nil, err
	}
	row.Name = strings.TrimSpace(req.Name)
	row.DisplayName = strings.TrimSpace(req.DisplayName)
	row.SortOrder = req.SortOrder
	if err := as.DB.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (as *AdminService) DeleteSubscriptionType(id uint) error {
	res := as.DB.Delete(&subscription.SubscriptionType{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (as *AdminService) ListSubscriptionLimits() ([]subscription.SubscriptionLimit, error) {
	var rows []subscription.SubscriptionLimit
	err := as.DB.Order("location_type ASC, location_value ASC, subscription_type ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpsertSubscriptionLimit keys on (location_type, location_value, tier) so a
// repeated submit edits the existing row.
func (as *AdminService) UpsertSubscriptionLimit(req SubscriptionLimitRequest) (*subscription.SubscriptionLimit, error) {
	if req.LocationType != "global" && req.LocationType != "dma" {
		return nil, fmt.Errorf("invalid location_type %q", req.LocationType)
	}
	if req.LocationType == "dma" && strings.TrimSpace(req.LocationValue) == "" {
		return nil, errors.New("location_value is required for dma limits")
	}

	var row subscription.SubscriptionLimit
	err := as.DB.Where(
		"location_type = ? AND location_value = ? AND subscription_type = ?",
		req.LocationType, req.LocationValue, req.SubscriptionType,
	).First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = subscription.SubscriptionLimit{
			LocationType:     req.LocationType,
			LocationValue:    req.LocationValue,
			SubscriptionType: req.SubscriptionType,
			MaxLawyers:       req.MaxLawyers,
		}
		if err := as.DB.Create(&row).Error; err != nil {
			return nil, err
		}
		return &row, nil
	}
	if err != nil {
		return nil, err
	}

	row.MaxLawyers = req.MaxLawyers
	if err := as.DB.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (as *AdminService) DeleteSubscriptionLimit(id uint) error {
	res := as.DB.Delete(&subscription.SubscriptionLimit{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (as *AdminService) ListTierOverrides(lawyerID uint) ([]subscription.LawyerDMASubscription, error) {
	var rows []subscription.LawyerDMASubscription
	if err := as.DB.Where("lawyer_id = ?", lawyerID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (as *AdminService) UpsertTierOverride(req TierOverrideRequest) (*subscription.LawyerDMASubscription, error) {
	var row subscription.LawyerDMASubscription
	err := as.DB.Where("lawyer_id = ? AND dma_id = ?", req.LawyerID, req.DMAID).First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = subscription.LawyerDMASubscription{
			LawyerID:         req.LawyerID,
			DMAID:            req.DMAID,
			SubscriptionType: req.SubscriptionType,
		}
		if err := as.DB.Create(&row).Error; err != nil {
			return nil, err
		}
		return &row, nil
	}
	if err != nil {
		return nil, err
	}

	row.SubscriptionType = req.SubscriptionType
	if err := as.DB.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (as *AdminService) DeleteTierOverride(id uint) error {
	res := as.DB.Delete(&subscription.LawyerDMASubscription{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ==========================
// Plans
// ==========================

func (as *AdminService) ListPlans() ([]subscription.SubscriptionPlan, error) {
	var rows []subscription.SubscriptionPlan
	err := as.DB.Preload("Features", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).Order("sort_order ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (as *AdminService) CreatePlan(req PlanRequest) (*subscription.SubscriptionPlan, error) {
	row := planFromRequest(req)
	if err := as.DB.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (as *AdminService) UpdatePlan(id uint, req PlanRequest) (*subscription.SubscriptionPlan, error) {
	var existing subscription.SubscriptionPlan
	if err := as.DB.First(&existing, id).Error; err != nil {
		return nil, err
	}

	row := planFromRequest(req)
	row.ID = id
	if err := as.DB.Model(&existing).Select("*").Omit("id", "created_at", "Features").Updates(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (as *AdminService) DeletePlan(id uint) error {
	return as.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&subscription.SubscriptionPlan{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("plan_id = ?", id).Delete(&subscription.SubscriptionPlanFeature{}).Error; err != nil {
			return err
		}
		return tx.Where("plan_id = ?", id).Delete(&subscription.SubscriptionPlanDMAOverride{}).Error
	})
}

func planFromRequest(req PlanRequest) *subscription.SubscriptionPlan {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	billing := req.BillingPeriod
	if billing == "" {
		billing = "month"
	}
	return &subscription.SubscriptionPlan{
		Name:          strings.TrimSpace(req.Name),
		DisplayName:   strings.TrimSpace(req.DisplayName),
		PriceCents:    req.PriceCents,
		PriceDisplay:  req.PriceDisplay,
		BillingPeriod: billing,
		Description:   req.Description,
		IsRecommended: req.IsRecommended,
		SortOrder:     req.SortOrder,
		Active:        active,
	}
}

// SetPlanFeatures replaces the plan's feature list wholesale.
func (as *AdminService) SetPlanFeatures(planID uint, features []PlanFeatureRequest) ([]subscription.SubscriptionPlanFeature, error) {
	var plan subscription.SubscriptionPlan
	if err := as.DB.First(&plan, planID).Error; err != nil {
		return nil, err
	}

	var rows []subscription.SubscriptionPlanFeature
	err := as.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", planID).Delete(&subscription.SubscriptionPlanFeature{}).Error; err != nil {
			return err
		}
		for _, f := range features {
			row := subscription.SubscriptionPlanFeature{
				PlanID:        planID,
				FeatureName:   f.FeatureName,
				FeatureValue:  f.FeatureValue,
				IsIncluded:    f.IsIncluded,
				IsHighlighted: f.IsHighlighted,
				SortOrder:     f.SortOrder,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			rows = append(rows, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (as *AdminService) UpsertPlanDMAOverride(planID uint, req PlanDMAOverrideRequest) (*subscription.SubscriptionPlanDMAOverride, error) {
	var plan subscription.SubscriptionPlan
	if err := as.DB.First(&plan, planID).Error; err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	var row subscription.SubscriptionPlanDMAOverride
	err := as.DB.Where("plan_id = ? AND dma_id = ?", planID, req.DMAID).First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = subscription.SubscriptionPlanDMAOverride{
			PlanID:       planID,
			DMAID:        req.DMAID,
			PriceCents:   req.PriceCents,
			PriceDisplay: req.PriceDisplay,
			Description:  req.Description,
			IsActive:     active,
		}
		if err := as.DB.Create(&row).Error; err != nil {
			return nil, err
		}
		return &row, nil
	}
	if err != nil {
		return nil, err
	}

	row.PriceCents = req.PriceCents
	row.PriceDisplay = req.PriceDisplay
	row.Description = req.Description
	row.IsActive = active
	if err := as.DB.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (as *AdminService) DeletePlanDMAOverride(id uint) error {
	res := as.DB.Delete(&subscription.SubscriptionPlanDMAOverride{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ==========================
// Contact submissions
// ==========================

func (as *AdminService) ListContactSubmissions(status string, from, to *string) ([]contact.ContactSubmission, error) {
	return as.Contacts.List(status, from, to)
}

func (as *AdminService) UpdateContactStatus(id uint, status string) error {
	return as.Contacts.UpdateStatus(id, status)
}

// ==========================
// Limits checker
// ==========================

// CheckLimits resolves a zip through the full fallback chain and reports the
// effective tier caps for its market.
func (as *AdminService) CheckLimits(ctx context.Context, zip string) (*LimitsCheckResult, error) {
	resolved, err := as.Resolver.Resolve(ctx, zip)
	if err != nil {
		return nil, err
	}

	result := &LimitsCheckResult{ZipCode: zip}
	if resolved == nil {
		result.Caps = as.Ranker.CapsForDMAs(ctx, nil)
		return result, nil
	}

	info := resolved.DMA.Info()
	result.DMA = &info
	result.Strategy = resolved.Strategy
	result.ZipCount = len(resolved.ZipCodes)
	result.Caps = as.Ranker.CapsForDMAs(ctx, []uint{resolved.DMA.ID})
	return result, nil
}
