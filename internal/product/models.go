package product

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a persisted product page. The four description documents and
// the three list fields hold arbitrary structured editor output; ImageURL and
// Gallery hold stored upload paths, not bare filenames.
type Product struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductName          string             `json:"productName" bson:"productName"`
	ProductLink          string             `json:"productLink" bson:"productLink"`
	CalendlyURL          string             `json:"calendlyUrl" bson:"calendlyUrl"`
	ProductPath          string             `json:"productPath" bson:"productPath"`
	Description          interface{}        `json:"description" bson:"description"`
	WhyChooseDes         interface{}        `json:"why_choose_des" bson:"why_choose_des"`
	WhoNeedDes           interface{}        `json:"who_need_des" bson:"who_need_des"`
	Category             interface{}        `json:"category" bson:"category"`
	ImageURL             []string           `json:"imageUrl" bson:"imageUrl"`
	Gallery              []string           `json:"gallery" bson:"gallery"`
	Benefits             []interface{}      `json:"benefits" bson:"benefits"`
	CustomerTestimonials []interface{}      `json:"customerTestimonials" bson:"customerTestimonials"`
	Plans                []interface{}      `json:"plans" bson:"plans"`
}
