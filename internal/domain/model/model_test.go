package model

import "testing"

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"pending", OrderStatusPending, "pending"},
		{"completed", OrderStatusCompleted, "completed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestPaymentEnumValues(t *testing.T) {
	if PaymentStatusUnpaid != "unpaid" || PaymentStatusPaid != "paid" {
		t.Fatalf("unexpected payment status values: %s %s", PaymentStatusUnpaid, PaymentStatusPaid)
	}
	if PaymentMethodOnline != "online" || PaymentMethodCash != "cash" {
		t.Fatalf("unexpected payment method values: %s %s", PaymentMethodOnline, PaymentMethodCash)
	}
	if CelebrationBirthday != "birthday" || CelebrationOther != "other" {
		t.Fatalf("unexpected celebration categories: %s %s", CelebrationBirthday, CelebrationOther)
	}
}
