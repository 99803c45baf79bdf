package leave

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const registerSheet = "Leave Register"

var registerHeader = []string{
	"Reference", "Employee ID", "Leave Type", "Cultural Context",
	"Start Date", "End Date", "Total Days", "Public Holidays",
	"Status", "Approved By", "Approved Date", "Rejection Reason", "Reason",
}

// renderRegister writes leaves to a single-sheet workbook, one row per
// request, in the given order.
func renderRegister(leaves []Leave, calendar HolidayCalendar) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), registerSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(registerHeader))
	for i, h := range registerHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(registerSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, l := range leaves {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		row := []any{
			l.ReferenceNumber,
			l.EmployeeID.String(),
			string(l.LeaveType),
			l.CulturalContext,
			l.StartDate.Format(dateLayout),
			l.EndDate.Format(dateLayout),
			l.TotalDays,
			strings.Join(calendar.Overlaps(l.StartDate, l.EndDate), ", "),
			string(l.Status),
			deref(l.ApprovedBy),
			"",
			deref(l.RejectionReason),
			l.Reason,
		}
		if l.ApprovedDate != nil {
			row[10] = l.ApprovedDate.Format(dateLayout)
		}
		if err := f.SetSheetRow(registerSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
