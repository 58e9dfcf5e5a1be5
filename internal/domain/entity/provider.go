package entity

import "strings"

// ProviderName identifies an external payment gateway
type ProviderName string

// Supported providers
const (
	ProviderCinetPay ProviderName = "cinetpay"
	ProviderFapshi   ProviderName = "fapshi"
	ProviderPluto    ProviderName = "pluto"
	ProviderNotchPay ProviderName = "notchpay"
)

// ParseProviderName normalizes a provider name from user input
func ParseProviderName(s string) ProviderName {
	return ProviderName(strings.ToLower(strings.TrimSpace(s)))
}

// Capability is an operation a provider may support
type Capability string

// Provider capabilities
const (
	CapabilityInitiate     Capability = "initiate"
	CapabilityStatus       Capability = "status"
	CapabilityDirectMobile Capability = "direct_mobile"
	CapabilityBalance      Capability = "balance"
	CapabilityPayout       Capability = "payout"
	CapabilitySearch       Capability = "search"
	CapabilityExpire       Capability = "expire"
	CapabilityNotification Capability = "notification"
)

// ProviderInfo describes an enabled provider for clients
type ProviderInfo struct {
	Name         ProviderName `json:"name"`
	DisplayName  string       `json:"display_name"`
	Currencies   []Currency   `json:"currencies"`
	Capabilities []Capability `json:"capabilities"`
}

// Supports reports whether the provider currency list contains c
func (p ProviderInfo) Supports(c Currency) bool {
	for _, cur := range p.Currencies {
		if cur == c {
			return true
		}
	}
	return false
}

// Recommendation is the provider chosen for a payment and why
type Recommendation struct {
	Provider ProviderName `json:"provider"`
	Reason   string       `json:"reason"`
}
