package models

import (
	"encoding/json"
	"time"
)

// Flower kinds accepted in bouquets and single flowers.
const (
	FlowerRose      = "rose"
	FlowerLily      = "lily"
	FlowerSunflower = "sunflower"
	FlowerLotus     = "lotus"
	FlowerJasmine   = "jasmine"
)

// Cake kinds. An empty CakeType means no cake.
const (
	CakeClassic      = "classic"
	CakeChocolate    = "chocolate"
	CakeVanilla      = "vanilla"
	CakeRedVelvet    = "redvelvet"
	CakeStrawberry   = "strawberry"
	CakeButterscotch = "butterscotch"
)

const (
	DefaultReceiver      = "Collective Soul"
	MaxBouquetFlowers    = 8
	MaxBouquetMessageLen = 500
	PublicBouquetLimit   = 20
)

var flowerKinds = map[string]struct{}{
	FlowerRose: {}, FlowerLily: {}, FlowerSunflower: {}, FlowerLotus: {}, FlowerJasmine: {},
}

var cakeKinds = map[string]struct{}{
	CakeClassic: {}, CakeChocolate: {}, CakeVanilla: {}, CakeRedVelvet: {}, CakeStrawberry: {}, CakeButterscotch: {},
}

// IsValidFlower reports whether kind is one of the fixed flower kinds.
func IsValidFlower(kind string) bool {
	_, ok := flowerKinds[kind]
	return ok
}

// IsValidCake reports whether kind is one of the fixed cake kinds.
func IsValidCake(kind string) bool {
	_, ok := cakeKinds[kind]
	return ok
}

// MusicData describes a track picked from the external music search.
type MusicData struct {
	Title      string `bson:"title" json:"title"`
	Artist     string `bson:"artist" json:"artist"`
	PreviewURL string `bson:"previewUrl" json:"previewUrl"`
	ArtworkURL string `bson:"artworkUrl" json:"artworkUrl"`
}

// Bouquet is a composed gift. It is readable by anyone holding its ID;
// IsPublic only controls inclusion in the public listing.
type Bouquet struct {
	ID                string     `gorm:"primaryKey;size:36" bson:"_id"`
	Flowers           []string   `gorm:"serializer:json;not null" bson:"flowers"`
	Message           string     `gorm:"size:500;not null" bson:"message"`
	AttachedShayariID *string    `gorm:"column:attached_shayari;size:36;index" bson:"attachedShayari,omitempty"`
	AttachedShayari   *Couplet   `gorm:"foreignKey:AttachedShayariID;constraint:OnDelete:SET NULL" bson:"-"`
	SenderID          string     `gorm:"column:sender;size:36;index;not null" bson:"sender"`
	SenderName        string     `gorm:"size:30;not null" bson:"senderName"`
	Receiver          string     `gorm:"size:100;not null" bson:"receiver"`
	IsPublic          bool       `gorm:"not null;index" bson:"isPublic"`
	SpotifyURL        string     `gorm:"size:500" bson:"spotifyUrl,omitempty"`
	MusicData         *MusicData `gorm:"serializer:json" bson:"musicData,omitempty"`
	CakeType          string     `gorm:"size:20" bson:"cakeType,omitempty"`
	CreatedAt         time.Time  `gorm:"index" bson:"createdAt"`
}

type bouquetJSON struct {
	ID              string          `json:"_id"`
	Flowers         []string        `json:"flowers"`
	Message         string          `json:"message"`
	AttachedShayari json.RawMessage `json:"attachedShayari"`
	SenderID        string          `json:"sender"`
	SenderName      string          `json:"senderName"`
	Receiver        string          `json:"receiver"`
	IsPublic        bool            `json:"isPublic"`
	SpotifyURL      string          `json:"spotifyUrl,omitempty"`
	MusicData       *MusicData      `json:"musicData,omitempty"`
	CakeType        string          `json:"cakeType,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// MarshalJSON renders attachedShayari as the expanded couplet when it was
// resolved and as the bare reference otherwise.
func (b Bouquet) MarshalJSON() ([]byte, error) {
	out := bouquetJSON{
		ID:         b.ID,
		Flowers:    b.Flowers,
		Message:    b.Message,
		SenderID:   b.SenderID,
		SenderName: b.SenderName,
		Receiver:   b.Receiver,
		IsPublic:   b.IsPublic,
		SpotifyURL: b.SpotifyURL,
		MusicData:  b.MusicData,
		CakeType:   b.CakeType,
		CreatedAt:  b.CreatedAt,
	}
	if out.Flowers == nil {
		out.Flowers = []string{}
	}

	var err error
	switch {
	case b.AttachedShayari != nil:
		out.AttachedShayari, err = json.Marshal(b.AttachedShayari)
	case b.AttachedShayariID != nil:
		out.AttachedShayari, err = json.Marshal(*b.AttachedShayariID)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts both shapes produced by MarshalJSON.
func (b *Bouquet) UnmarshalJSON(data []byte) error {
	var in bouquetJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*b = Bouquet{
		ID:         in.ID,
		Flowers:    in.Flowers,
		Message:    in.Message,
		SenderID:   in.SenderID,
		SenderName: in.SenderName,
		Receiver:   in.Receiver,
		IsPublic:   in.IsPublic,
		SpotifyURL: in.SpotifyURL,
		MusicData:  in.MusicData,
		CakeType:   in.CakeType,
		CreatedAt:  in.CreatedAt,
	}
	if len(in.AttachedShayari) == 0 || string(in.AttachedShayari) == "null" {
		return nil
	}

	var ref string
	if err := json.Unmarshal(in.AttachedShayari, &ref); err == nil {
		b.AttachedShayariID = &ref
		return nil
	}
	var couplet Couplet
	if err := json.Unmarshal(in.AttachedShayari, &couplet); err != nil {
		return err
	}
	b.AttachedShayari = &couplet
	b.AttachedShayariID = &couplet.ID
	return nil
}
