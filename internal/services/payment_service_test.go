package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ganapathi9191/Social-media-sub000/internal/gateway"
	"github.com/ganapathi9191/Social-media-sub000/internal/models"
)

func newPaymentService(t *testing.T) (*PaymentService, *WalletService) {
	db := setupTestDB(t)
	wallets := NewWalletService(db, 10)
	service := NewPaymentService(db, wallets, gateway.NewDevGateway(), "test-signing-secret")
	return service, wallets
}

func TestVerifyPurchaseCreditsExactlyOnce(t *testing.T) {
	service, _ := newPaymentService(t)
	createTestUser(t, service.db, 1)

	pkg, err := service.CreatePackage("Starter", 100, decimal.NewFromInt(49), "INR")
	if err != nil {
		t.Fatalf("CreatePackage failed: %v", err)
	}

	payment, err := service.PurchaseCoins(1, pkg.ID)
	if err != nil {
		t.Fatalf("PurchaseCoins failed: %v", err)
	}
	if payment.Status != models.PaymentStatusCreated {
		t.Fatalf("expected created status, got %s", payment.Status)
	}

	signature := service.Sign(payment.OrderID, "pay_123")
	verified, err := service.VerifyPurchase(payment.OrderID, "pay_123", signature)
	if err != nil {
		t.Fatalf("VerifyPurchase failed: %v", err)
	}
	if verified.Status != models.PaymentStatusSuccess {
		t.Errorf("expected success, got %s", verified.Status)
	}

	var wallet models.Wallet
	if err := service.db.Where("user_id = ?", 1).First(&wallet).Error; err != nil {
		t.Fatalf("wallet not created: %v", err)
	}
	if wallet.Coins != 110 {
		t.Errorf("expected 110 coins (10 bonus + 100 purchase), got %d", wallet.Coins)
	}

	// Re-verifying the same successful payment must not credit again.
	verified, err = service.VerifyPurchase(payment.OrderID, "pay_123", signature)
	if err != nil {
		t.Fatalf("duplicate VerifyPurchase failed: %v", err)
	}
	if verified.Status != models.PaymentStatusSuccess {
		t.Errorf("expected success on re-verify, got %s", verified.Status)
	}

	service.db.Where("user_id = ?", 1).First(&wallet)
	if wallet.Coins != 110 {
		t.Errorf("duplicate verification double-credited: got %d", wallet.Coins)
	}

	var purchases int64
	service.db.Model(&models.WalletEntry{}).
		Where("user_id = ? AND type = ?", 1, models.EntryPurchase).
		Count(&purchases)
	if purchases != 1 {
		t.Errorf("expected exactly 1 purchase entry, got %d", purchases)
	}
}

func TestVerifyPurchaseBadSignature(t *testing.T) {
	service, _ := newPaymentService(t)
	createTestUser(t, service.db, 1)

	pkg, err := service.CreatePackage("Starter", 100, decimal.NewFromInt(49), "INR")
	if err != nil {
		t.Fatalf("CreatePackage failed: %v", err)
	}
	payment, err := service.PurchaseCoins(1, pkg.ID)
	if err != nil {
		t.Fatalf("PurchaseCoins failed: %v", err)
	}

	if _, err := service.VerifyPurchase(payment.OrderID, "pay_123", "forged"); err != ErrInvalidSignature {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}

	stored, err := service.GetPayment(payment.OrderID)
	if err != nil {
		t.Fatalf("GetPayment failed: %v", err)
	}
	if stored.Status != models.PaymentStatusFailed {
		t.Errorf("expected failed status, got %s", stored.Status)
	}

	var wallets int64
	service.db.Model(&models.Wallet{}).Where("user_id = ?", 1).Count(&wallets)
	if wallets != 0 {
		t.Error("failed payment must not create or credit a wallet")
	}

	// Failed is terminal: even a now-correct signature cannot revive it.
	good := service.Sign(payment.OrderID, "pay_123")
	if _, err := service.VerifyPurchase(payment.OrderID, "pay_123", good); err != ErrPaymentFinalized {
		t.Errorf("expected ErrPaymentFinalized, got %v", err)
	}
}

func TestPurchaseUnknownOrInactivePackage(t *testing.T) {
	service, _ := newPaymentService(t)
	createTestUser(t, service.db, 1)

	if _, err := service.PurchaseCoins(1, 42); err != ErrPackageNotFound {
		t.Errorf("expected ErrPackageNotFound, got %v", err)
	}

	pkg, err := service.CreatePackage("Hidden", 10, decimal.NewFromInt(9), "INR")
	if err != nil {
		t.Fatalf("CreatePackage failed: %v", err)
	}
	if _, err := service.UpdatePackage(pkg.ID, pkg.Name, pkg.Coins, pkg.Price, false); err != nil {
		t.Fatalf("UpdatePackage failed: %v", err)
	}
	if _, err := service.PurchaseCoins(1, pkg.ID); err != ErrPackageNotFound {
		t.Errorf("expected ErrPackageNotFound for inactive package, got %v", err)
	}
}

func TestVerifyUnknownOrder(t *testing.T) {
	service, _ := newPaymentService(t)
	if _, err := service.VerifyPurchase("order_missing", "pay_1", "sig"); err != ErrPaymentNotFound {
		t.Errorf("expected ErrPaymentNotFound, got %v", err)
	}
}
