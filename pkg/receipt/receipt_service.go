package receipt

import (
	"Finora-Backend/domain"
	"Finora-Backend/entities"
	"Finora-Backend/internal/utils/mailing"
	"Finora-Backend/internal/utils/storage"
	"Finora-Backend/pkg/account"
	"Finora-Backend/pkg/audit"
	"Finora-Backend/pkg/transaction"
	"Finora-Backend/pkg/user"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	maxReceiptFileSize = 10 << 20 // 10 MiB
	presignExpiry      = 15 * time.Minute
	estimatedTime      = "30-60 seconds"
)

// allowedMimeTypes maps accepted file extensions to their MIME allow-list.
var allowedMimeTypes = map[string][]string{
	".jpg":  {"image/jpeg"},
	".jpeg": {"image/jpeg"},
	".png":  {"image/png"},
	".webp": {"image/webp"},
	".pdf":  {"application/pdf"},
}

type (
	ReceiptService interface {
		UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest, userID string, clientIP string) (domain.UploadReceiptResponse, error)
		GetReceiptStatus(ctx context.Context, id string, userID string) (domain.ReceiptStatusResponse, error)
		GetReceipts(ctx context.Context, userID string, status string, page, limit int) ([]domain.ReceiptListItem, int64, error)
		ProcessReceipt(ctx context.Context, receiptID string)
	}

	receiptService struct {
		receiptRepository     ReceiptRepository
		transactionRepository transaction.TransactionRepository
		accountRepository     account.AccountRepository
		userRepository        user.UserRepository
		auditRepository       audit.AuditRepository
		matcher               *TransactionMatcher
		extractor             Extractor
		s3                    storage.AwsS3

		notifyReview func(email, receiptID string)
	}
)

func NewReceiptService(
	receiptRepository ReceiptRepository,
	transactionRepository transaction.TransactionRepository,
	accountRepository account.AccountRepository,
	userRepository user.UserRepository,
	auditRepository audit.AuditRepository,
	extractor Extractor,
	s3 storage.AwsS3,
) ReceiptService {
	return &receiptService{
		receiptRepository:     receiptRepository,
		transactionRepository: transactionRepository,
		accountRepository:     accountRepository,
		userRepository:        userRepository,
		auditRepository:       auditRepository,
		matcher:               NewTransactionMatcher(transactionRepository),
		extractor:             extractor,
		s3:                    s3,
		notifyReview: func(email, receiptID string) {
			if err := mailing.SendReceiptReviewMail(email, receiptID); err != nil {
				log.Printf("Error sending review notification for receipt %s: %v", receiptID, err)
			}
		},
	}
}

func (s *receiptService) UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest, userID string, clientIP string) (domain.UploadReceiptResponse, error) {
	res, err := s.uploadReceipt(ctx, req, userID)
	s.writeAuditLog(userID, clientIP, res.ReceiptID, err)
	return res, err
}

func (s *receiptService) uploadReceipt(ctx context.Context, req domain.UploadReceiptRequest, userID string) (domain.UploadReceiptResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.UploadReceiptResponse{}, domain.ErrParseUUID
	}

	if req.Receipt == nil {
		return domain.UploadReceiptResponse{}, domain.ErrReceiptFileRequired
	}

	ext := strings.ToLower(filepath.Ext(req.Receipt.Filename))
	allowedMimes, ok := allowedMimeTypes[ext]
	if !ok {
		return domain.UploadReceiptResponse{}, domain.ErrUnsupportedFileType
	}

	mimeType := req.Receipt.Header.Get("Content-Type")
	if !mimeAllowed(mimeType, allowedMimes) {
		return domain.UploadReceiptResponse{}, domain.ErrUnsupportedFileType
	}

	if req.Receipt.Size > maxReceiptFileSize {
		return domain.UploadReceiptResponse{}, domain.ErrFileTooLarge
	}

	// Ownership of the upload targets is verified before any side effect.
	// Mismatches report as validation errors, matching observed behavior of
	// the upstream API.
	transactionID, err := s.resolveTransactionTarget(ctx, req.TransactionID, userID)
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}
	bankAccountID, err := s.resolveBankAccountTarget(ctx, req.BankAccountID, userID)
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}

	tempPath, err := saveTempFile(req.Receipt, ext)
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}
	defer os.Remove(tempPath)

	uploadPath := tempPath
	uploadMime := mimeType
	keyExt := ext
	if ext != ".pdf" {
		normalizedPath := tempPath + ".norm.jpg"
		if err := NormalizeImage(tempPath, normalizedPath); err != nil {
			return domain.UploadReceiptResponse{}, err
		}
		defer os.Remove(normalizedPath)
		uploadPath = normalizedPath
		uploadMime = "image/jpeg"
		keyExt = ".jpg"
	}

	receiptID := uuid.New()
	objectKey := fmt.Sprintf("receipts/%s/%d-%s%s", userID, time.Now().UnixNano(), receiptID.String()[:8], keyExt)

	if err := s.s3.UploadLocalFile(uploadPath, objectKey, uploadMime); err != nil {
		return domain.UploadReceiptResponse{}, err
	}

	receipt := &entities.Receipt{
		ID:                receiptID,
		UserID:            userUUID,
		BankAccountID:     bankAccountID,
		TransactionID:     transactionID,
		ObjectKey:         objectKey,
		FileURL:           s.s3.GetPublicLinkKey(objectKey),
		MimeType:          uploadMime,
		FileSize:          req.Receipt.Size,
		Status:            entities.ReceiptStatusPending,
		Description:       req.Description,
		Category:          req.Category,
		TaxCategory:       req.TaxCategory,
		IsBusinessExpense: req.IsBusinessExpense,
		UploadedAt:        time.Now(),
	}

	if err := s.receiptRepository.CreateReceipt(ctx, receipt); err != nil {
		// Object storage and the relational store are not jointly
		// transactional; compensate by deleting the uploaded object.
		_ = s.s3.DeleteFile(objectKey)
		return domain.UploadReceiptResponse{}, err
	}

	if transactionID != nil {
		linked, err := s.transactionRepository.LinkReceipt(ctx, *transactionID, receiptID)
		if err != nil {
			log.Printf("Error linking receipt %s to transaction %s: %v", receiptID, transactionID, err)
		}
		if err != nil || !linked {
			// The transaction was claimed between the ownership check and
			// here; keep the upload but drop the stale reference.
			receipt.TransactionID = nil
			if err := s.receiptRepository.UpdateReceipt(ctx, receipt); err != nil {
				log.Printf("Error clearing transaction link on receipt %s: %v", receiptID, err)
			}
		}
	}

	go s.processAsync(receiptID.String())

	return domain.UploadReceiptResponse{
		ReceiptID:               receiptID.String(),
		Status:                  entities.ReceiptStatusPending,
		Message:                 domain.MessageSuccessUploadReceipt,
		EstimatedProcessingTime: estimatedTime,
	}, nil
}

func (s *receiptService) resolveTransactionTarget(ctx context.Context, id string, userID string) (*uuid.UUID, error) {
	if id == "" {
		return nil, nil
	}
	target, err := s.transactionRepository.GetTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidTransactionRef
		}
		return nil, err
	}
	if target.UserID.String() != userID {
		return nil, domain.ErrInvalidTransactionRef
	}
	if target.ReceiptID != nil {
		return nil, domain.ErrTransactionAlreadyLinked
	}
	return &target.ID, nil
}

func (s *receiptService) resolveBankAccountTarget(ctx context.Context, id string, userID string) (*uuid.UUID, error) {
	if id == "" {
		return nil, nil
	}
	target, err := s.accountRepository.GetBankAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidBankAccountRef
		}
		return nil, err
	}
	if target.UserID.String() != userID {
		return nil, domain.ErrInvalidBankAccountRef
	}
	return &target.ID, nil
}

func (s *receiptService) processAsync(receiptID string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic processing receipt %s: %v", receiptID, r)
		}
	}()
	// Detached from the request context: the HTTP response has already been
	// sent when this runs.
	s.ProcessReceipt(context.Background(), receiptID)
}

// ProcessReceipt runs the extraction pipeline for one uploaded receipt:
// Processing mark, extraction call, field validation, transaction matching,
// then a single terminal write. Errors never propagate; they end up on the
// receipt row as status Failed.
func (s *receiptService) ProcessReceipt(ctx context.Context, receiptID string) {
	receipt, err := s.receiptRepository.GetReceiptByID(ctx, receiptID)
	if err != nil {
		log.Printf("Error loading receipt %s for processing: %v", receiptID, err)
		return
	}

	if receipt.Status != entities.ReceiptStatusPending {
		return
	}

	receipt.Status = entities.ReceiptStatusProcessing
	if err := s.receiptRepository.UpdateReceipt(ctx, receipt); err != nil {
		log.Printf("Error marking receipt %s as processing: %v", receiptID, err)
		return
	}

	start := time.Now()

	fileURL, err := s.s3.PresignGetObject(ctx, receipt.ObjectKey, presignExpiry)
	if err != nil {
		s.finalize(ctx, receipt, nil, nil, entities.ReceiptStatusFailed, err.Error(), start)
		return
	}

	data, err := s.extractor.ExtractReceiptData(ctx, fileURL)
	if err != nil {
		s.finalize(ctx, receipt, nil, nil, entities.ReceiptStatusFailed, err.Error(), start)
		return
	}

	validation := ValidateExtractedData(data)
	review := RequiresReview(data, validation)

	if receipt.BankAccountID != nil && receipt.TransactionID == nil &&
		data.TotalAmount != nil && data.Date != nil {
		matched, _, err := s.matcher.MatchOrCreate(ctx, receipt, data, !review)
		if err != nil {
			s.finalize(ctx, receipt, &data, &validation, entities.ReceiptStatusFailed, err.Error(), start)
			return
		}
		if matched != nil {
			receipt.TransactionID = &matched.ID
		}
	}

	status := entities.ReceiptStatusCompleted
	if review {
		status = entities.ReceiptStatusRequiresReview
	}

	s.finalize(ctx, receipt, &data, &validation, status, "", start)

	if status == entities.ReceiptStatusRequiresReview {
		if owner, err := s.userRepository.GetUserByID(ctx, receipt.UserID.String()); err == nil {
			go s.notifyReview(owner.Email, receipt.ID.String())
		}
	}
}

// finalize is the single writer that moves a receipt out of Processing.
func (s *receiptService) finalize(ctx context.Context, receipt *entities.Receipt, data *domain.ExtractedReceiptData, validation *domain.ValidationResult, status string, errorMessage string, start time.Time) {
	if data != nil {
		if encoded, err := json.Marshal(data); err == nil {
			receipt.ExtractedFields = string(encoded)
		}
	}
	if validation != nil {
		if encoded, err := json.Marshal(validation); err == nil {
			receipt.ValidationResults = string(encoded)
		}
	}

	now := time.Now()
	receipt.Status = status
	receipt.ErrorMessage = errorMessage
	receipt.ProcessedAt = &now
	receipt.ProcessingTimeMs = time.Since(start).Milliseconds()

	if err := s.receiptRepository.UpdateReceipt(ctx, receipt); err != nil {
		log.Printf("Error finalizing receipt %s: %v", receipt.ID, err)
	}
}

func (s *receiptService) GetReceiptStatus(ctx context.Context, id string, userID string) (domain.ReceiptStatusResponse, error) {
	receipt, err := s.receiptRepository.GetReceiptByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReceiptStatusResponse{}, domain.ErrReceiptNotFound
		}
		return domain.ReceiptStatusResponse{}, err
	}

	if receipt.UserID.String() != userID {
		return domain.ReceiptStatusResponse{}, domain.ErrReceiptNotFound
	}

	response := domain.ReceiptStatusResponse{
		ID:               receipt.ID.String(),
		Status:           receipt.Status,
		FileURL:          receipt.FileURL,
		ErrorMessage:     receipt.ErrorMessage,
		UploadedAt:       receipt.UploadedAt,
		ProcessedAt:      receipt.ProcessedAt,
		ProcessingTimeMs: receipt.ProcessingTimeMs,
	}

	if receipt.ExtractedFields != "" {
		var data domain.ExtractedReceiptData
		if err := json.Unmarshal([]byte(receipt.ExtractedFields), &data); err == nil {
			response.ExtractedData = &data
		}
	}

	if receipt.ValidationResults != "" {
		var validation domain.ValidationResult
		if err := json.Unmarshal([]byte(receipt.ValidationResults), &validation); err == nil {
			response.ValidationResults = &validation
		}
	}

	if receipt.TransactionID != nil {
		if linked, err := s.transactionRepository.GetTransactionByID(ctx, receipt.TransactionID.String()); err == nil {
			response.Transaction = &domain.TransactionSummary{
				ID:           linked.ID.String(),
				Amount:       linked.Amount,
				Date:         linked.Date,
				MerchantName: linked.MerchantName,
				Category:     linked.Category,
			}
		}
	}

	return response, nil
}

func (s *receiptService) GetReceipts(ctx context.Context, userID string, status string, page, limit int) ([]domain.ReceiptListItem, int64, error) {
	receipts, count, err := s.receiptRepository.GetReceipts(ctx, userID, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	items := make([]domain.ReceiptListItem, 0, len(receipts))
	for _, receipt := range receipts {
		items = append(items, domain.ReceiptListItem{
			ID:         receipt.ID.String(),
			Status:     receipt.Status,
			FileURL:    receipt.FileURL,
			UploadedAt: receipt.UploadedAt,
		})
	}

	return items, count, nil
}

func (s *receiptService) writeAuditLog(userID string, clientIP string, receiptID string, uploadErr error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return
	}

	entry := &entities.AuditLog{
		ID:         uuid.New(),
		UserID:     userUUID,
		Action:     "receipt.upload",
		Resource:   "receipt",
		ResourceID: receiptID,
		Success:    uploadErr == nil,
		IPAddress:  clientIP,
	}
	if uploadErr != nil {
		entry.Message = uploadErr.Error()
	}

	if err := s.auditRepository.CreateAuditLog(context.Background(), entry); err != nil {
		log.Printf("Error writing audit log for user %s: %v", userID, err)
	}
}

func mimeAllowed(mimeType string, allowed []string) bool {
	for _, m := range allowed {
		if mimeType == m {
			return true
		}
	}
	return false
}

func saveTempFile(file *multipart.FileHeader, ext string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "receipt-*"+ext)
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	return tmp.Name(), nil
}
