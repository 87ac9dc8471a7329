package services

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"cab-booking/internal/apperror"
	"cab-booking/internal/models"
)

// ErrInvalidPaymentMethod возвращается фабрикой для неизвестного способа оплаты.
var ErrInvalidPaymentMethod = errors.New("invalid payment method")

// PaymentStrategy проводит оплату и пишет подтверждение в консоль.
// Набор реализаций закрыт: UPIPayment, CardPayment и WalletPayment.
type PaymentStrategy interface {
	Pay(amount float64) *models.PaymentReceipt
	Method() models.PaymentMethod
	paymentStrategy()
}

// channel содержит общее для всех способов оплаты
type channel struct {
	currency string
	out      io.Writer
}

func newChannel(currency string, out io.Writer) channel {
	if out == nil {
		out = io.Discard
	}
	return channel{currency: currency, out: out}
}

func (c channel) pay(method models.PaymentMethod, amount float64) *models.PaymentReceipt {
	receipt := &models.PaymentReceipt{
		Method:   method,
		Amount:   amount,
		Currency: c.currency,
		Message:  fmt.Sprintf("Paid %s%s via %s", c.currency, formatAmount(amount), method),
	}
	fmt.Fprintln(c.out, receipt.Message)
	return receipt
}

// UPIPayment проводит оплату через UPI.
type UPIPayment struct{ channel }

// NewUPIPayment создает оплату через UPI.
func NewUPIPayment(currency string, out io.Writer) *UPIPayment {
	return &UPIPayment{channel: newChannel(currency, out)}
}

// Pay проводит оплату.
func (p *UPIPayment) Pay(amount float64) *models.PaymentReceipt {
	return p.pay(models.PaymentMethodUPI, amount)
}

// Method возвращает способ оплаты.
func (p *UPIPayment) Method() models.PaymentMethod { return models.PaymentMethodUPI }

func (p *UPIPayment) paymentStrategy() {}

// CardPayment проводит оплату картой.
type CardPayment struct{ channel }

// NewCardPayment создает оплату картой.
func NewCardPayment(currency string, out io.Writer) *CardPayment {
	return &CardPayment{channel: newChannel(currency, out)}
}

// Pay проводит оплату.
func (p *CardPayment) Pay(amount float64) *models.PaymentReceipt {
	return p.pay(models.PaymentMethodCard, amount)
}

// Method возвращает способ оплаты.
func (p *CardPayment) Method() models.PaymentMethod { return models.PaymentMethodCard }

func (p *CardPayment) paymentStrategy() {}

// WalletPayment проводит оплату из кошелька.
type WalletPayment struct{ channel }

// NewWalletPayment создает оплату из кошелька.
func NewWalletPayment(currency string, out io.Writer) *WalletPayment {
	return &WalletPayment{channel: newChannel(currency, out)}
}

// Pay проводит оплату.
func (p *WalletPayment) Pay(amount float64) *models.PaymentReceipt {
	return p.pay(models.PaymentMethodWallet, amount)
}

// Method возвращает способ оплаты.
func (p *WalletPayment) Method() models.PaymentMethod { return models.PaymentMethodWallet }

func (p *WalletPayment) paymentStrategy() {}

// NewPaymentStrategy возвращает способ оплаты по ключу без учета регистра.
func NewPaymentStrategy(method, currency string, out io.Writer) (PaymentStrategy, error) {
	switch strings.ToUpper(method) {
	case strings.ToUpper(string(models.PaymentMethodUPI)):
		return NewUPIPayment(currency, out), nil
	case strings.ToUpper(string(models.PaymentMethodCard)):
		return NewCardPayment(currency, out), nil
	case strings.ToUpper(string(models.PaymentMethodWallet)):
		return NewWalletPayment(currency, out), nil
	default:
		return nil, apperror.InvalidPaymentMethod(fmt.Sprintf("invalid payment method %q", method), ErrInvalidPaymentMethod)
	}
}

// formatAmount печатает сумму как вещественное число: 250 -> "250.0", 12.5 -> "12.5".
func formatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return s
	}
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
