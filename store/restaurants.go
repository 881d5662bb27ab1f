package store

import (
	"context"

	"github.com/dulce-tentacion/pasteleria-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LocationInput struct {
	PostalCode string `json:"codigo_postal" validate:"required"`
	Street     string `json:"calle" validate:"required"`
	Zone       string `json:"zona" validate:"required"`
	Avenue     string `json:"avenida"`
}

type HoursInput struct {
	Weekdays string `json:"entre_semana" validate:"required"`
	Weekends string `json:"fines_de_semana" validate:"required"`
	Holidays string `json:"asueto"`
}

type CreateRestaurantInput struct {
	Name     string        `json:"nombre_restaurante" validate:"required"`
	Location LocationInput `json:"ubicacion" validate:"required"`
	Phones   []string      `json:"telefono" validate:"required,min=1"`
	Hours    HoursInput    `json:"horarios_de_atencion" validate:"required"`
}

// UpdateRestaurantInput applies partial updates, including nested location
// and hours fields via dotted paths.
type UpdateRestaurantInput struct {
	Name     *string `json:"nombre_restaurante"`
	Location *struct {
		PostalCode *string `json:"codigo_postal"`
		Street     *string `json:"calle"`
		Zone       *string `json:"zona"`
		Avenue     *string `json:"avenida"`
	} `json:"ubicacion"`
	Phones *[]string `json:"telefono"`
	Hours  *struct {
		Weekdays *string `json:"entre_semana"`
		Weekends *string `json:"fines_de_semana"`
		Holidays *string `json:"asueto"`
	} `json:"horarios_de_atencion"`
	Active *bool `json:"esActivo"`
}

func (in UpdateRestaurantInput) set() bson.M {
	set := bson.M{}
	if in.Name != nil {
		set["nombre_restaurante"] = *in.Name
	}
	if in.Phones != nil {
		set["telefono"] = *in.Phones
	}
	if in.Active != nil {
		set["esActivo"] = *in.Active
	}
	if in.Location != nil {
		if in.Location.PostalCode != nil {
			set["ubicacion.codigo_postal"] = *in.Location.PostalCode
		}
		if in.Location.Street != nil {
			set["ubicacion.calle"] = *in.Location.Street
		}
		if in.Location.Zone != nil {
			set["ubicacion.zona"] = *in.Location.Zone
		}
		if in.Location.Avenue != nil {
			set["ubicacion.avenida"] = *in.Location.Avenue
		}
	}
	if in.Hours != nil {
		if in.Hours.Weekdays != nil {
			set["horarios_de_atencion.entre_semana"] = *in.Hours.Weekdays
		}
		if in.Hours.Weekends != nil {
			set["horarios_de_atencion.fines_de_semana"] = *in.Hours.Weekends
		}
		if in.Hours.Holidays != nil {
			set["horarios_de_atencion.asueto"] = *in.Hours.Holidays
		}
	}
	return set
}

func (s *Store) ListRestaurants(ctx context.Context) ([]models.RestaurantRow, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"nombre_restaurante": 1, "ubicacion": 1, "telefono": 1}).
		SetSort(bson.D{{Key: "nombre_restaurante", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := s.collection(ColRestaurants).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	rows := []models.RestaurantRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) ListActiveRestaurantNames(ctx context.Context) ([]string, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"nombre_restaurante": 1}).
		SetSort(bson.D{{Key: "nombre_restaurante", Value: 1}})

	cursor, err := s.collection(ColRestaurants).Find(ctx, bson.M{"esActivo": true}, opts)
	if err != nil {
		return nil, err
	}
	var rows []struct {
		Name string `bson:"nombre_restaurante"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Name)
	}
	return names, nil
}

func (s *Store) GetRestaurant(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var restaurant models.Restaurant
	err := s.collection(ColRestaurants).FindOne(ctx, bson.M{"_id": id}).Decode(&restaurant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

func (s *Store) GetRestaurantSchedule(ctx context.Context, id primitive.ObjectID) (*models.RestaurantSchedule, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"nombre_restaurante": 1, "horarios_de_atencion": 1})

	var schedule models.RestaurantSchedule
	err := s.collection(ColRestaurants).FindOne(ctx, bson.M{"_id": id}, opts).Decode(&schedule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &schedule, nil
}

func (s *Store) CreateRestaurant(ctx context.Context, in CreateRestaurantInput) (*models.Restaurant, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	restaurant := models.Restaurant{
		ID:   primitive.NewObjectID(),
		Name: in.Name,
		Location: models.Location{
			PostalCode: in.Location.PostalCode,
			Street:     in.Location.Street,
			Zone:       in.Location.Zone,
			Avenue:     in.Location.Avenue,
		},
		Phones: in.Phones,
		Hours: models.Hours{
			Weekdays: in.Hours.Weekdays,
			Weekends: in.Hours.Weekends,
			Holidays: in.Hours.Holidays,
		},
		Active: true,
	}
	if _, err := s.collection(ColRestaurants).InsertOne(ctx, restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (s *Store) UpdateRestaurant(ctx context.Context, id primitive.ObjectID, in UpdateRestaurantInput) error {
	set := in.set()
	if len(set) == 0 {
		return validationErr("no fields to update")
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := s.collection(ColRestaurants).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
