// internal/service/list_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"okura/internal/middleware"
	"okura/internal/model"
	"okura/internal/repository"
)

type ListService interface {
	CreateList(ctx context.Context, req *model.CreateListRequest) (*model.VocabList, error)
	ListLists(ctx context.Context) ([]*model.VocabList, error)
	GetList(ctx context.Context, listID uuid.UUID) (*model.VocabList, error)
	DeleteList(ctx context.Context, listID uuid.UUID) error
	AddCard(ctx context.Context, listID uuid.UUID, req *model.CreateCardRequest) (*model.Card, error)
	BulkAddCards(ctx context.Context, listID uuid.UUID, reqs []model.CreateCardRequest) (*model.BulkAddResult, error)
	GetCard(ctx context.Context, cardID uuid.UUID) (*model.Card, error)
	DeleteCard(ctx context.Context, cardID uuid.UUID) error
}

type listService struct {
	db       *gorm.DB
	listRepo repository.ListRepository
	cardRepo repository.CardRepository
	now      func() time.Time
}

func NewListService(db *gorm.DB, listRepo repository.ListRepository, cardRepo repository.CardRepository) ListService {
	return &listService{
		db:       db,
		listRepo: listRepo,
		cardRepo: cardRepo,
		now:      time.Now,
	}
}

func (s *listService) CreateList(ctx context.Context, req *model.CreateListRequest) (*model.VocabList, error) {
	logger := middleware.GetLogger(ctx)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "タイトルは必須です。", "title", model.ErrInvalidInput)
	}
	lang := req.Lang
	if lang == "" {
		lang = model.LangJapanese
	}

	list := &model.VocabList{
		ListID:      uuid.New(),
		Title:       title,
		Description: req.Description,
		Lang:        lang,
	}
	if err := s.listRepo.Create(ctx, s.db, list); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("DUPLICATE_TITLE", "同じタイトルのリストが既に存在します。", "title", err)
		}
		logger.Error("Failed to create list", "error", err, "title", title)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "リストの作成に失敗しました。", "", err)
	}

	logger.Info("List created", "list_id", list.ListID, "lang", lang)
	return list, nil
}

func (s *listService) ListLists(ctx context.Context) ([]*model.VocabList, error) {
	lists, err := s.listRepo.FindAll(ctx, s.db)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list lists", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "リスト一覧の取得に失敗しました。", "", err)
	}
	return lists, nil
}

func (s *listService) GetList(ctx context.Context, listID uuid.UUID) (*model.VocabList, error) {
	list, err := s.listRepo.FindByIDWithCards(ctx, s.db, listID)
	if err != nil {
		return nil, listLookupError(ctx, listID, err)
	}
	return list, nil
}

// DeleteList はリストと所属するカードをまとめて削除する
func (s *listService) DeleteList(ctx context.Context, listID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("list_id", listID)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.listRepo.FindByID(ctx, tx, listID); err != nil {
			return listLookupError(ctx, listID, err)
		}
		removed, err := s.cardRepo.DeleteByList(ctx, tx, listID)
		if err != nil {
			logger.Error("Failed to delete cards of list", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの削除に失敗しました。", "", err)
		}
		if err := s.listRepo.Delete(ctx, tx, listID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "リストが見つかりません。", "list_id", err)
			}
			logger.Error("Failed to delete list", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "リストの削除に失敗しました。", "", err)
		}
		logger.Info("List deleted", "cards_removed", removed)
		return nil
	})
}

// AddCard はカードを1枚追加する。新しいカードはすぐに復習対象になる
func (s *listService) AddCard(ctx context.Context, listID uuid.UUID, req *model.CreateCardRequest) (*model.Card, error) {
	logger := middleware.GetLogger(ctx).With("list_id", listID)

	card, ok := s.newCard(listID, req)
	if !ok {
		return nil, model.NewAppError("VALIDATION_ERROR", "単語は必須です。", "term", model.ErrInvalidInput)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.listRepo.FindByID(ctx, tx, listID); err != nil {
			return listLookupError(ctx, listID, err)
		}
		if err := s.cardRepo.Create(ctx, tx, card); err != nil {
			logger.Error("Failed to create card", "error", err, "term", card.Term)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの作成に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Card added", "card_id", card.CardID, "term", card.Term)
	return card, nil
}

// BulkAddCards はカードをまとめて追加する。
// ent_seq がリストに既にあるもの、同じバッチ内で先に出てきたものはスキップし、単語が空のものはエラーとして数える。
// ent_seq のないカードは常に新規扱い
func (s *listService) BulkAddCards(ctx context.Context, listID uuid.UUID, reqs []model.CreateCardRequest) (*model.BulkAddResult, error) {
	logger := middleware.GetLogger(ctx).With("list_id", listID)
	result := &model.BulkAddResult{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.listRepo.FindByID(ctx, tx, listID); err != nil {
			return listLookupError(ctx, listID, err)
		}

		candidates := make([]*model.Card, 0, len(reqs))
		var entSeqs []int64
		for i := range reqs {
			card, ok := s.newCard(listID, &reqs[i])
			if !ok {
				logger.Debug("Skipping invalid card in batch", "index", i)
				result.Errored++
				continue
			}
			candidates = append(candidates, card)
			if card.EntSeq != nil {
				entSeqs = append(entSeqs, *card.EntSeq)
			}
		}

		existing, err := s.cardRepo.ExistingEntSeqs(ctx, tx, listID, entSeqs)
		if err != nil {
			logger.Error("Failed to find existing cards", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "既存カードの確認に失敗しました。", "", err)
		}

		seen := make(map[int64]bool, len(entSeqs))
		fresh := make([]*model.Card, 0, len(candidates))
		for _, card := range candidates {
			if card.EntSeq != nil {
				id := *card.EntSeq
				if existing[id] || seen[id] {
					result.Skipped++
					continue
				}
				seen[id] = true
			}
			fresh = append(fresh, card)
		}

		if err := s.cardRepo.CreateBatch(ctx, tx, fresh); err != nil {
			logger.Error("Failed to create cards in batch", "error", err, "count", len(fresh))
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの一括作成に失敗しました。", "", err)
		}
		result.Created = len(fresh)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Bulk add finished",
		"created", result.Created,
		"skipped", result.Skipped,
		"errored", result.Errored,
	)
	return result, nil
}

func (s *listService) GetCard(ctx context.Context, cardID uuid.UUID) (*model.Card, error) {
	card, err := s.cardRepo.FindByID(ctx, s.db, cardID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "カードが見つかりません。", "card_id", err)
		}
		middleware.GetLogger(ctx).Error("Failed to get card", "error", err, "card_id", cardID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "カードの取得に失敗しました。", "", err)
	}
	return card, nil
}

func (s *listService) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	if err := s.cardRepo.Delete(ctx, s.db, cardID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("NOT_FOUND", "カードが見つかりません。", "card_id", err)
		}
		middleware.GetLogger(ctx).Error("Failed to delete card", "error", err, "card_id", cardID)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの削除に失敗しました。", "", err)
	}
	return nil
}

// newCard はリクエストから未保存のカードを作る。単語が空なら false
func (s *listService) newCard(listID uuid.UUID, req *model.CreateCardRequest) (*model.Card, bool) {
	term := strings.TrimSpace(req.Term)
	if term == "" {
		return nil, false
	}
	return &model.Card{
		CardID:      uuid.New(),
		ListID:      listID,
		Term:        term,
		Reading:     req.Reading,
		POS:         req.POS,
		EntSeq:      req.EntSeq,
		Definitions: model.JoinGlosses(req.Definitions),
		Context:     req.Context,
		EaseFactor:  model.DefaultEaseFactor,
		NextReview:  s.now(),
	}, true
}

func listLookupError(ctx context.Context, listID uuid.UUID, err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError("NOT_FOUND", "リストが見つかりません。", "list_id", err)
	}
	middleware.GetLogger(ctx).Error("Failed to find list", "error", err, "list_id", listID)
	return model.NewAppError("INTERNAL_SERVER_ERROR", "リストの取得に失敗しました。", "", err)
}
