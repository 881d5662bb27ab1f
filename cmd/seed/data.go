package main

import (
	"github.com/dulce-tentacion/pasteleria-backend/models"
)

var sampleRestaurants = []models.Restaurant{
	{
		Name: "Dulce Tentación Zona 1",
		Location: models.Location{
			PostalCode: "01001", Street: "6a Calle", Zone: "1", Avenue: "5a Avenida",
		},
		Phones: []string{"2230-1144"},
		Hours: models.Hours{
			Weekdays: "8:00 - 20:00", Weekends: "9:00 - 21:00", Holidays: "10:00 - 17:00",
		},
		Active: true,
	},
	{
		Name: "Dulce Tentación Zona 10",
		Location: models.Location{
			PostalCode: "01010", Street: "4a Calle", Zone: "10", Avenue: "12 Avenida",
		},
		Phones: []string{"2368-2255", "2368-2256"},
		Hours: models.Hours{
			Weekdays: "7:30 - 21:00", Weekends: "8:00 - 22:00", Holidays: "9:00 - 18:00",
		},
		Active: true,
	},
	{
		Name: "Dulce Tentación Zona 15",
		Location: models.Location{
			PostalCode: "01015", Street: "10 Calle", Zone: "15", Avenue: "2a Avenida",
		},
		Phones: []string{"2345-6789"},
		Hours: models.Hours{
			Weekdays: "8:00 - 20:00", Weekends: "9:00 - 21:00", Holidays: "10:00 - 17:00",
		},
		Active: true,
	},
}

type sampleUser struct {
	Username string
	Password string
	Type     models.UserType
}

var sampleUsers = []sampleUser{
	{Username: "admin_laura", Password: "admin123", Type: models.UserTypeAdmin},
	{Username: "cliente_maria", Password: "maria123", Type: models.UserTypeClient},
	{Username: "cliente_carlos", Password: "carlos123", Type: models.UserTypeClient},
	{Username: "cliente_sofia", Password: "sofia123", Type: models.UserTypeClient},
	{Username: "cliente_diego", Password: "diego123", Type: models.UserTypeClient},
}

var sampleProducts = []models.Product{
	{Name: "Pastel de Chocolate", Description: "Bizcocho húmedo con ganache de chocolate oscuro.", PrepMinutes: 45, Ingredients: []string{"harina", "cacao", "azúcar", "huevos", "mantequilla"}, Active: true, Price: 185.00},
	{Name: "Cheesecake de Fresas", Description: "Base de galleta con queso crema y fresas frescas.", PrepMinutes: 60, Ingredients: []string{"queso crema", "galleta", "fresas", "azúcar"}, Active: true, Price: 165.00},
	{Name: "Tres Leches Tradicional", Description: "Bizcocho bañado en tres leches con canela.", PrepMinutes: 50, Ingredients: []string{"harina", "leche condensada", "leche evaporada", "crema", "canela"}, Active: true, Price: 140.00},
	{Name: "Pie de Limón", Description: "Base crocante con crema de limón y merengue.", PrepMinutes: 40, Ingredients: []string{"galleta", "limón", "leche condensada", "huevos"}, Active: true, Price: 120.00},
	{Name: "Tiramisú", Description: "Capas de bizcocho al café con mascarpone.", PrepMinutes: 35, Ingredients: []string{"mascarpone", "café", "bizcocho", "cacao"}, Active: true, Price: 175.00},
	{Name: "Rollos de Canela", Description: "Rollos recién horneados con glaseado de vainilla.", PrepMinutes: 30, Ingredients: []string{"harina", "canela", "azúcar", "mantequilla", "vainilla"}, Active: true, Price: 95.00},
	{Name: "Brownies con Nuez", Description: "Brownies densos de chocolate con nuez tostada.", PrepMinutes: 35, Ingredients: []string{"cacao", "nuez", "azúcar", "huevos", "mantequilla"}, Active: true, Price: 85.00},
	{Name: "Alfajores de Maicena", Description: "Alfajores rellenos de dulce de leche con coco.", PrepMinutes: 25, Ingredients: []string{"maicena", "dulce de leche", "coco", "mantequilla"}, Active: true, Price: 75.00},
	{Name: "Tarta de Manzana", Description: "Tarta de manzana con canela y masa quebrada.", PrepMinutes: 55, Ingredients: []string{"manzana", "harina", "canela", "azúcar", "mantequilla"}, Active: true, Price: 130.00},
	{Name: "Éclairs de Vainilla", Description: "Masa choux rellena de crema pastelera de vainilla.", PrepMinutes: 40, Ingredients: []string{"harina", "huevos", "vainilla", "crema", "chocolate"}, Active: true, Price: 110.00},
}

var reviewTitles = []string{
	"Delicioso",
	"Muy recomendado",
	"Buen sabor",
	"Podría mejorar",
	"Excelente postre",
	"Una tentación",
}

var reviewDescriptions = []string{
	"El pastel de chocolate estaba delicioso, llegó fresco.",
	"Buen servicio y entrega puntual, repetiré el pedido.",
	"El postre llegó un poco tarde pero el sabor lo compensa.",
	"La porción era más pequeña de lo esperado.",
	"Todo excelente, el mejor cheesecake de la zona.",
	"Sabor casero, se nota la calidad de los ingredientes.",
}
