package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter             = otel.Meter("outfit-recommender/service")
	WardrobeIndexed   metric.Int64Counter
	WardrobeSkipped   metric.Int64Counter
	OutfitSlotsFilled metric.Int64Counter
)

func init() {
	var err error
	WardrobeIndexed, err = meter.Int64Counter(
		"wardrobe_items_indexed_total",
		metric.WithDescription("Wardrobe images accepted into a catalog"),
	)
	if err != nil {
		panic(err)
	}

	WardrobeSkipped, err = meter.Int64Counter(
		"wardrobe_items_skipped_total",
		metric.WithDescription("Wardrobe images dropped while indexing"),
	)
	if err != nil {
		panic(err)
	}

	OutfitSlotsFilled, err = meter.Int64Counter(
		"outfit_slots_total",
		metric.WithDescription("Outfit slots processed, by slot and outcome"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordItemSkipped records one wardrobe image dropped for reason
func RecordItemSkipped(ctx context.Context, reason string) {
	WardrobeSkipped.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason),
	))
}

// RecordSlotOutcome records whether a slot received an item
func RecordSlotOutcome(ctx context.Context, slot string, filled bool) {
	OutfitSlotsFilled.Add(ctx, 1, metric.WithAttributes(
		attribute.String("slot", slot),
		attribute.Bool("filled", filled),
	))
}
