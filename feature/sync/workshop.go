package sync

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"qldf/core/extract"
	"qldf/core/models"
	"qldf/core/reconcile"
)

// syncWorkshopItems runs in two phases. Phase A finds workshop items for
// maps that have no linkage yet, by searching the workshop for the map name
// and taking the first result. Phase B refreshes the metadata of every known
// item from its detail page, field by field with fallback to the stored
// values. Items are never deleted.
func (s *Service) syncWorkshopItems(ctx context.Context, log *zap.Logger, runID string) error {
	if err := s.linkWorkshopItems(ctx, log); err != nil {
		return err
	}
	return s.refreshWorkshopItems(ctx, log)
}

// linkWorkshopItems is phase A: map name -> workshop search -> first result.
func (s *Service) linkWorkshopItems(ctx context.Context, log *zap.Logger) error {
	var unlinked []models.Map
	if err := s.db.WithContext(ctx).Where("workshop_item_id IS NULL").Find(&unlinked).Error; err != nil {
		return fmt.Errorf("load unlinked maps: %w", err)
	}
	if len(unlinked) == 0 {
		return nil
	}

	type linkage struct {
		mapID  uint
		itemID string
	}
	var links []linkage
	for _, m := range unlinked {
		raw, err := s.fetcher.Text(ctx, s.cfg.WorkshopSearchURL+m.Name, nil)
		if err != nil {
			return err
		}
		itemID, ok := extract.WorkshopSearchItemID(extract.NewDocument(raw))
		if !ok {
			log.Info("no workshop search result for map", zap.String("map", m.Name))
			continue
		}
		links = append(links, linkage{mapID: m.ID, itemID: itemID})
	}

	if len(links) == 0 {
		log.Info("no new workshop linkages", zap.Int("unlinked_maps", len(unlinked)))
		return nil
	}

	// All linkages of one pass commit together.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, link := range links {
			item := models.WorkshopItem{ItemID: link.itemID}
			if err := tx.Where(models.WorkshopItem{ItemID: link.itemID}).
				FirstOrCreate(&item).Error; err != nil {
				return fmt.Errorf("create workshop item %s: %w", link.itemID, err)
			}
			if err := tx.Model(&models.Map{}).Where("id = ?", link.mapID).
				Update("workshop_item_id", item.ID).Error; err != nil {
				return fmt.Errorf("link map %d: %w", link.mapID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("workshop items linked",
		zap.Int("unlinked_maps", len(unlinked)),
		zap.Int("linked", len(links)))
	return nil
}

// refreshWorkshopItems is phase B: refresh every item from its detail page.
func (s *Service) refreshWorkshopItems(ctx context.Context, log *zap.Logger) error {
	var items []models.WorkshopItem
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return fmt.Errorf("load workshop items: %w", err)
	}

	// Vanity resolutions are cached for this run only.
	cache := extract.NewVanityCache()

	external := make([]models.WorkshopItem, 0, len(items))
	for _, item := range items {
		raw, err := s.fetcher.Text(ctx, s.cfg.WorkshopItemURL+item.ItemID, nil)
		if err != nil {
			return err
		}

		doc := extract.NewDocument(raw)
		itemLog := log.With(zap.String("item_id", item.ItemID))
		fields := extract.Workshop(ctx, doc, extract.WorkshopFields{
			Name:          item.Name,
			AuthorSteamID: item.AuthorSteamID,
			Description:   item.Description,
			Date:          item.Date,
			Size:          item.Size,
			NumComments:   item.NumComments,
			Score:         item.Score,
			NumScores:     item.NumScores,
			PreviewURL:    item.PreviewURL,
		}, s.fetcher, cache, itemLog)

		item.Name = fields.Name
		item.AuthorSteamID = fields.AuthorSteamID
		item.Description = fields.Description
		item.Date = fields.Date
		item.Size = fields.Size
		item.NumComments = fields.NumComments
		item.Score = fields.Score
		item.NumScores = fields.NumScores
		item.PreviewURL = fields.PreviewURL
		external = append(external, item)
	}

	plan := reconcile.Diff(external, items, reconcile.Options[models.WorkshopItem]{
		Merge: func(ext, loc models.WorkshopItem) models.WorkshopItem {
			ext.Model = loc.Model
			return ext
		},
		Unchanged: workshopItemUnchanged,
		Logger:    log,
	})

	log.Info("workshop items reconciled",
		zap.Int("items", len(items)),
		zap.Int("updates", len(plan.Updates)),
		zap.Int("unchanged", plan.Unchanged),
		zap.Int("vanity_resolutions", cache.Len()))

	return reconcile.Apply(s.db.WithContext(ctx), plan, "item_id")
}

func workshopItemUnchanged(merged, local models.WorkshopItem) bool {
	return merged.Name == local.Name &&
		merged.AuthorSteamID == local.AuthorSteamID &&
		merged.Description == local.Description &&
		merged.Date.Equal(local.Date) &&
		merged.Size == local.Size &&
		merged.NumComments == local.NumComments &&
		merged.Score == local.Score &&
		merged.NumScores == local.NumScores &&
		merged.PreviewURL == local.PreviewURL
}
