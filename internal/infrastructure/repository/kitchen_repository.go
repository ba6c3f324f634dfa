package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	"github.com/rasoipos/rasoi-api/internal/domain/enum"
	domainRepo "github.com/rasoipos/rasoi-api/internal/domain/repository"
)

type kitchenTicketRepository struct {
	db *gorm.DB
}

// NewKitchenTicketRepository creates a new kitchen ticket repository
func NewKitchenTicketRepository(db *gorm.DB) domainRepo.KitchenTicketRepository {
	return &kitchenTicketRepository{db: db}
}

func (r *kitchenTicketRepository) Create(ctx context.Context, ticket *entity.KitchenTicket) error {
	return conn(ctx, r.db).Create(ticket).Error
}

func (r *kitchenTicketRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.KitchenTicket, error) {
	var ticket entity.KitchenTicket
	err := conn(ctx, r.db).
		Preload("Items").
		First(&ticket, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ticket, err
}

func (r *kitchenTicketRepository) FindOpen(ctx context.Context, orderID uuid.UUID, stationID *uuid.UUID) (*entity.KitchenTicket, error) {
	var ticket entity.KitchenTicket
	query := conn(ctx, r.db).
		Where("order_id = ?", orderID).
		Where("status <> ?", enum.KOTCancelled)
	if stationID == nil {
		query = query.Where("target_station IS NULL")
	} else {
		query = query.Where("target_station = ?", *stationID)
	}
	err := query.First(&ticket).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ticket, err
}

func (r *kitchenTicketRepository) ListByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.KitchenTicket, error) {
	var tickets []entity.KitchenTicket
	err := conn(ctx, r.db).
		Preload("Items").
		Where("order_id = ?", orderID).
		Order("ticket_no ASC").
		Find(&tickets).Error
	return tickets, err
}

func (r *kitchenTicketRepository) AddItem(ctx context.Context, item *entity.KitchenTicketItem) error {
	return conn(ctx, r.db).Create(item).Error
}

func (r *kitchenTicketRepository) Update(ctx context.Context, ticket *entity.KitchenTicket) error {
	return conn(ctx, r.db).Save(ticket).Error
}

func (r *kitchenTicketRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.KOTStatus) error {
	return conn(ctx, r.db).Model(&entity.KitchenTicket{}).
		Where("id = ?", id).
		Update("status", status).Error
}

type kitchenStationRepository struct {
	db *gorm.DB
}

// NewKitchenStationRepository creates a new kitchen station repository
func NewKitchenStationRepository(db *gorm.DB) domainRepo.KitchenStationRepository {
	return &kitchenStationRepository{db: db}
}

func (r *kitchenStationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.KitchenStation, error) {
	var station entity.KitchenStation
	err := conn(ctx, r.db).First(&station, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &station, err
}

func (r *kitchenStationRepository) GetWithPrinter(ctx context.Context, id uuid.UUID) (*entity.KitchenStation, error) {
	var station entity.KitchenStation
	err := conn(ctx, r.db).
		Preload("Printer").
		First(&station, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &station, err
}

func (r *kitchenStationRepository) List(ctx context.Context, branchID uuid.UUID) ([]entity.KitchenStation, error) {
	var stations []entity.KitchenStation
	err := conn(ctx, r.db).
		Scopes(TenantScope(ctx)).
		Where("branch_id = ?", branchID).
		Order("name ASC").
		Find(&stations).Error
	return stations, err
}

func (r *kitchenStationRepository) Create(ctx context.Context, station *entity.KitchenStation) error {
	return conn(ctx, r.db).Create(station).Error
}
