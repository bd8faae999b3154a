package booking

import "github.com/shopspring/decimal"

// UnassignedStaff is rendered when an appointment has no staff member yet.
const UnassignedStaff = "Unassigned"

type ServiceLineView struct {
	ServiceID   uint            `json:"service_id"`
	Name        string          `json:"name"`
	DurationMin int             `json:"duration_min"`
	Price       decimal.Decimal `json:"price"`
}

type AppointmentView struct {
	ID          uint              `json:"id"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Status      string            `json:"status"`
	Total       decimal.Decimal   `json:"total"`
	ClientName  string            `json:"client_name"`
	ClientEmail string            `json:"client_email"`
	ClientPhone string            `json:"client_phone"`
	Staff       string            `json:"staff"`
	Services    []ServiceLineView `json:"services"`
}

// BuildAppointmentViews folds the flat join rows into one view per
// appointment with its lines nested. Joins duplicate the appointment columns
// once per line, so rows are grouped by id; input order (date desc, time
// desc from the repository) is preserved.
func BuildAppointmentViews(rows []AppointmentRow) []AppointmentView {
	views := make([]AppointmentView, 0)
	index := make(map[uint]int)

	for _, row := range rows {
		i, seen := index[row.ID]
		if !seen {
			staff := UnassignedStaff
			if row.StaffName != nil && *row.StaffName != "" {
				staff = *row.StaffName
			}

			views = append(views, AppointmentView{
				ID:          row.ID,
				Date:        row.Date,
				Time:        TruncateTime(row.Time),
				Status:      row.Status,
				Total:       row.Total,
				ClientName:  row.ClientName,
				ClientEmail: row.ClientEmail,
				ClientPhone: row.ClientPhone,
				Staff:       staff,
				Services:    []ServiceLineView{},
			})
			i = len(views) - 1
			index[row.ID] = i
		}

		if row.ServiceID == nil {
			continue
		}

		line := ServiceLineView{
			ServiceID: *row.ServiceID,
			Price:     row.PriceAtBooking.Decimal,
		}
		if row.ServiceName != nil {
			line.Name = *row.ServiceName
		}
		if row.DurationMin != nil {
			line.DurationMin = *row.DurationMin
		}
		views[i].Services = append(views[i].Services, line)
	}

	return views
}
