package payroll

type CreatePayrollRequest struct {
	DriverID string `json:"driver_id" binding:"required,uuid"`
	Month    int    `json:"month" binding:"required,min=1,max=12"`
	Year     int    `json:"year" binding:"required,min=2000,max=2100"`
	// WorkedHoursTotal is required for employee drivers and ignored for partners.
	WorkedHoursTotal *string `json:"worked_hours_total"`
	Notes            *string `json:"notes"`
}

type PreviewPayrollRequest struct {
	DriverID         string  `json:"driver_id" binding:"required,uuid"`
	Month            int     `json:"month" binding:"required,min=1,max=12"`
	Year             int     `json:"year" binding:"required,min=2000,max=2100"`
	WorkedHoursTotal *string `json:"worked_hours_total"`
}

type RecalculatePayrollRequest struct {
	WorkedHoursTotal *string `json:"worked_hours_total"`
	Notes            *string `json:"notes"`
}

type BatchRecomputeRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000,max=2100"`
}

type GetPayrollsFilterRequest struct {
	Period   string `form:"period"`
	Status   string `form:"status"`
	DriverID string `form:"driver_id"`
}

type PayrollQueryFilter struct {
	Month    *int
	Year     *int
	Status   *string
	DriverID *string
}

type DeductionResponse struct {
	PersonalExpensesTotal     string `json:"personal_expenses_total"`
	WithdrawalsTotal          string `json:"withdrawals_total"`
	ConvertedCollectionsTotal string `json:"converted_collections_total"`
	CashCollectedTotal        string `json:"cash_collected_total"`
	CarryOverPreviousMonth    string `json:"carry_over_previous_month"`
}

type PayrollResponse struct {
	ID                string             `json:"id,omitempty"`
	DriverID          string             `json:"driver_id"`
	DriverName        string             `json:"driver_name,omitempty"`
	Month             int                `json:"month"`
	Year              int                `json:"year"`
	Period            string             `json:"period"`
	CalculationType   string             `json:"calculation_type"`
	TripCount         int                `json:"trip_count"`
	DistanceKmTotal   string             `json:"distance_km_total"`
	WaitingHoursTotal string             `json:"waiting_hours_total"`
	WorkedHoursTotal  *string            `json:"worked_hours_total,omitempty"`
	HourlyRate        *string            `json:"hourly_rate,omitempty"`
	UpliftCoefficient *string            `json:"uplift_coefficient,omitempty"`
	HourlyWaitingRate *string            `json:"hourly_waiting_rate,omitempty"`
	BaseAmount        *string            `json:"base_amount,omitempty"`
	UpliftedBase      *string            `json:"uplifted_base,omitempty"`
	WaitingAmount     *string            `json:"waiting_amount,omitempty"`
	GrossTotal        string             `json:"gross_total"`
	Deductions        *DeductionResponse `json:"deductions,omitempty"`
	NetTotal          string             `json:"net_total"`
	Status            string             `json:"status,omitempty"`
	Notes             *string            `json:"notes,omitempty"`
	CreatedBy         string             `json:"created_by,omitempty"`
	ConfirmedBy       *string            `json:"confirmed_by,omitempty"`
	ConfirmedAt       *string            `json:"confirmed_at,omitempty"`
	PaidBy            *string            `json:"paid_by,omitempty"`
	PaidAt            *string            `json:"paid_at,omitempty"`
	LedgerEntryID     *string            `json:"ledger_entry_id,omitempty"`
	Version           int                `json:"version,omitempty"`
}

type TripLineResponse struct {
	TripID       string `json:"trip_id"`
	ServiceDate  string `json:"service_date"`
	DistanceKm   string `json:"distance_km"`
	WaitingHours string `json:"waiting_hours"`
	RoundedKm    *int   `json:"rounded_km,omitempty"`
	Mode         string `json:"mode"`
	BaseAmount   string `json:"base_amount"`
	Explanation  string `json:"explanation"`
}

type PayrollBreakdownResponse struct {
	Payroll PayrollResponse    `json:"payroll"`
	Trips   []TripLineResponse `json:"trips"`
}

const (
	BatchOutcomeCreated      = "created"
	BatchOutcomeRecalculated = "recalculated"
	BatchOutcomeSkipped      = "skipped"
	BatchOutcomeFailed       = "failed"
)

type BatchDriverResult struct {
	DriverID   string `json:"driver_id"`
	DriverName string `json:"driver_name"`
	Outcome    string `json:"outcome"`
	PayrollID  string `json:"payroll_id,omitempty"`
	Message    string `json:"message,omitempty"`
}

type BatchRecomputeResponse struct {
	Month        int                 `json:"month"`
	Year         int                 `json:"year"`
	Processed    int                 `json:"processed"`
	Created      int                 `json:"created"`
	Recalculated int                 `json:"recalculated"`
	Skipped      int                 `json:"skipped"`
	Failed       int                 `json:"failed"`
	Interrupted  bool                `json:"interrupted"`
	Results      []BatchDriverResult `json:"results"`
}

type BatchRequestedResponse struct {
	Month     int    `json:"month"`
	Year      int    `json:"year"`
	RequestID string `json:"request_id"`
}
