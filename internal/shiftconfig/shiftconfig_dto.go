package shiftconfig

type UpdateShiftConfigRequest struct {
	Start                          string   `json:"start" binding:"required"`
	End                            string   `json:"end" binding:"required"`
	GracePeriodMinutes             int      `json:"grace_period_minutes" binding:"min=0"`
	EarlyCheckoutRelaxationMinutes int      `json:"early_checkout_relaxation_minutes" binding:"min=0"`
	Timezone                       string   `json:"timezone" binding:"required"`
	FridayExemptSuffixes           []string `json:"friday_exempt_suffixes"`
	FridayCutoff                   string   `json:"friday_cutoff"`
}

type ShiftConfigResponse struct {
	Start                          string   `json:"start"`
	End                            string   `json:"end"`
	GracePeriodMinutes             int      `json:"grace_period_minutes"`
	EarlyCheckoutRelaxationMinutes int      `json:"early_checkout_relaxation_minutes"`
	Timezone                       string   `json:"timezone"`
	FridayExemptSuffixes           []string `json:"friday_exempt_suffixes,omitempty"`
	FridayCutoff                   string   `json:"friday_cutoff,omitempty"`
	Overnight                      bool     `json:"overnight"`
}
