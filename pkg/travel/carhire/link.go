package carhire

import (
	"context"

	"github.com/voyagekit/skytravel/pkg/travel"
)

// Raw wire shapes of the car-hire poll response. Unlike the flight
// endpoints the collections arrive in snake_case; offers reference car
// classes, websites and images by numeric id.

type document struct {
	Cars       []rawCar   `json:"cars"`
	Websites   []Website  `json:"websites"`
	CarClasses []CarClass `json:"car_classes"`
	Images     []Image    `json:"images"`
}

type rawCar struct {
	CarClassID  int     `json:"car_class_id"`
	WebsiteID   int     `json:"website_id"`
	ImageID     int     `json:"image_id"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	DeeplinkURL string  `json:"deeplink_url"`
}

// pending reports whether any provider is still being collected from.
func (d *document) pending() bool {
	for _, w := range d.Websites {
		if w.InProgress {
			return true
		}
	}
	return false
}

// link resolves every offer's id references. Unresolvable references are
// omitted; the offer itself is always kept. When an image saver is
// configured, resolved images are archived and their local path recorded.
func (l *LivePrices) link(ctx context.Context, doc *document) *Result {
	cfg := l.client.Config()
	classAt := travel.Index(doc.CarClasses, func(c CarClass) int { return c.ID })
	websiteAt := travel.Index(doc.Websites, func(w Website) int { return w.ID })
	imageAt := travel.Index(doc.Images, func(i Image) int { return i.ID })

	result := &Result{
		Websites:   doc.Websites,
		CarClasses: doc.CarClasses,
	}
	for _, raw := range doc.Cars {
		car := Car{
			Price:       raw.Price,
			Currency:    raw.Currency,
			DeeplinkURL: raw.DeeplinkURL,
		}
		if i, ok := classAt[raw.CarClassID]; ok {
			car.CarClass = &doc.CarClasses[i]
		}
		if i, ok := websiteAt[raw.WebsiteID]; ok {
			car.Website = &doc.Websites[i]
		}
		if i, ok := imageAt[raw.ImageID]; ok {
			car.Image = &doc.Images[i]
			if l.saver != nil && car.Image.URL != "" {
				car.ImagePath = l.saver.Save(ctx, car.Image.URL, l.saveDir)
			}
		}
		if !cfg.RemoveIDs {
			car.CarClassID = raw.CarClassID
			car.WebsiteID = raw.WebsiteID
			car.ImageID = raw.ImageID
		}
		result.Cars = append(result.Cars, car)
	}
	return result
}
