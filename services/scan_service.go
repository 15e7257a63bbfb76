package services

import (
	"fmt"
	"log"
	"time"

	"backend/allergen"
	"backend/config"
	"backend/models"
	"backend/utils"
)

// ScanService runs the whole label-scan pipeline: store the image,
// extract its text, parse the ingredient list, classify every
// ingredient, then (optionally) enrich the verdicts. OCR and
// enrichment are slow external collaborators invoked around the core;
// the classification itself is the pure allergen.Analyze pass.
type ScanService struct {
	ocr *OCRService
	gem *GeminiService
}

func NewScanService(ocr *OCRService, gem *GeminiService) *ScanService {
	return &ScanService{ocr: ocr, gem: gem}
}

// ScanResult is what the client gets back for one scan.
type ScanResult struct {
	ScanID      uint            `json:"scan_id"`
	ImageURL    string          `json:"image_url,omitempty"`
	OCRText     string          `json:"ocr_text"`
	OCRMethod   string          `json:"ocr_method"`
	Ingredients []string        `json:"ingredients"`
	Report      allergen.Report `json:"report"`
}

// ScanImage processes a base64 data-URI label photo for one user.
// OCR failure degrades to empty text rather than failing the scan;
// the caller distinguishes "nothing to analyze" from success through
// the report status and prompts for a clearer photo.
func (s *ScanService) ScanImage(userID uint, base64Img string) (*ScanResult, error) {
	imageURL, err := utils.UploadBase64ImageToS3(base64Img, fmt.Sprintf("scan-images/user-%d", userID))
	if err != nil {
		// the scan is still useful without the archived image
		log.Printf("scan image upload failed for user %d: %v", userID, err)
		imageURL = ""
	}

	text := ""
	method := "rekognition"
	if s.ocr != nil {
		text, err = s.ocr.ExtractText(base64Img)
		if err != nil {
			log.Printf("OCR failed for user %d: %v", userID, err)
			text = ""
		}
	}

	return s.scanText(userID, imageURL, text, method)
}

// ScanText analyzes label text the client already extracted (e.g. a
// device-side OCR pass), skipping Rekognition entirely.
func (s *ScanService) ScanText(userID uint, rawText string) (*ScanResult, error) {
	return s.scanText(userID, "", rawText, "client")
}

func (s *ScanService) scanText(userID uint, imageURL, rawText, method string) (*ScanResult, error) {
	tokens := allergen.ParseIngredients(rawText)

	personal, err := PersonalAllergenSet(userID)
	if err != nil {
		return nil, err
	}

	report := allergen.Analyze(tokens, personal, CatalogIndex())

	// advisory annotation only, appended after the verdicts are final
	if s.gem != nil {
		s.gem.ExplainFindings(&report)
	}

	record := models.ScanRecord{
		UserID:          userID,
		ImageURL:        imageURL,
		OCRText:         rawText,
		OCRMethod:       method,
		IngredientCount: len(tokens),
		PersonalMatches: report.PersonalMatches,
		CatalogMatches:  report.CatalogMatches,
		SafeCount:       report.SafeCount,
		ScannedAt:       time.Now(),
	}
	if err := config.DB.Create(&record).Error; err != nil {
		return nil, err
	}

	s.alertOnSevereMatches(userID, report)

	return &ScanResult{
		ScanID:      record.ID,
		ImageURL:    imageURL,
		OCRText:     rawText,
		OCRMethod:   method,
		Ingredients: tokens,
		Report:      report,
	}, nil
}

// alertOnSevereMatches notifies the user on every channel when a scan
// hits a personal allergen they marked severe.
func (s *ScanService) alertOnSevereMatches(userID uint, report allergen.Report) {
	for _, f := range report.Findings {
		if f.Classification != allergen.ClassPersonal || f.Severity != allergen.SeveritySevere {
			continue
		}
		msg := fmt.Sprintf("Scanned product contains %s (severity: severe). Avoid this product.", f.Ingredient)
		EmitAlert(userID, "allergen", msg)

		if user, err := findUserByID(userID); err == nil {
			if err := utils.SendAllergenAlertEmail(user.Email, f.Ingredient, string(f.Severity)); err != nil {
				log.Printf("allergen alert email failed for user %d: %v", userID, err)
			}
		}
	}
}

func findUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListScanHistory returns a user's most recent scans, newest first.
func ListScanHistory(userID uint, limit int) ([]models.ScanRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var scans []models.ScanRecord
	err := config.DB.Where("user_id = ?", userID).
		Order("scanned_at DESC").Limit(limit).Find(&scans).Error
	return scans, err
}
