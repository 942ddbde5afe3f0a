package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/analytics"
)

const dateLayout = "2006-01-02"

// ParsePeriodParams traduce i parametri di query range/startDate/endDate nella
// coppia (nome finestra, periodo custom). Con entrambe le date esplicite il
// range dichiarato viene ignorato a favore di "custom"; con un range vuoto si
// ricade su "all".
func ParsePeriodParams(rangeName, startDate, endDate string) (string, *analytics.Period, error) {
	rangeName = strings.TrimSpace(rangeName)
	startDate = strings.TrimSpace(startDate)
	endDate = strings.TrimSpace(endDate)

	if startDate != "" || endDate != "" {
		if startDate == "" || endDate == "" {
			return "", nil, fmt.Errorf("%w: startDate e endDate vanno indicate insieme", domain.ErrInvalidPeriod)
		}
		start, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return "", nil, fmt.Errorf("%w: startDate %q", domain.ErrInvalidPeriod, startDate)
		}
		end, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return "", nil, fmt.Errorf("%w: endDate %q", domain.ErrInvalidPeriod, endDate)
		}
		if start.After(end) {
			return "", nil, fmt.Errorf("%w: startDate successiva a endDate", domain.ErrInvalidPeriod)
		}
		return analytics.RangeCustom, &analytics.Period{Start: start, End: end}, nil
	}

	if rangeName == "" {
		return analytics.RangeAll, nil, nil
	}
	return rangeName, nil, nil
}
