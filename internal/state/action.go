package state

import (
	"github.com/google/uuid"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
)

// AppAction is the tagged variant set the application store reducer accepts.
// Every mutation of the store goes through exactly one of these.
type AppAction interface{ appAction() }

type LoginAction struct {
	User  model.User
	Token string
}

type LogoutAction struct{}

type UpdateUserAction struct{ Patch model.UserPatch }

type AddToCartAction struct{ Item model.CartItem }

type RemoveFromCartAction struct{ ID string }

type UpdateCartItemAction struct {
	ID    string
	Patch model.CartItemPatch
}

type ClearCartAction struct{}

type SetAppLoadingAction struct{ Loading bool }

type SetAppErrorAction struct{ Message string }

type ClearAppErrorAction struct{}

type SetThemeAction struct{ Theme string }

type SetLanguageAction struct{ Language string }

type AddNotificationAction struct{ Notification model.Notification }

type RemoveNotificationAction struct{ ID uuid.UUID }

func (LoginAction) appAction() {}
func (LogoutAction) appAction() {}
func (UpdateUserAction) appAction() {}
func (AddToCartAction) appAction() {}
func (RemoveFromCartAction) appAction() {}
func (UpdateCartItemAction) appAction() {}
func (ClearCartAction) appAction() {}
func (SetAppLoadingAction) appAction() {}
func (SetAppErrorAction) appAction() {}
func (ClearAppErrorAction) appAction() {}
func (SetThemeAction) appAction() {}
func (SetLanguageAction) appAction() {}
func (AddNotificationAction) appAction() {}
func (RemoveNotificationAction) appAction() {}

// SearchAction is the variant set for the search store reducer.
type SearchAction interface{ searchAction() }

type SetSearchDataAction struct{ Query model.SearchQuery }

type ClearSearchDataAction struct{}

type SetSearchLoadingAction struct{ Loading bool }

type SetResultsAction struct{ Results []model.Flight }

type SetSearchErrorAction struct{ Message string }

type SetDraftAction struct{ Draft model.SearchDraft }

type ClearDraftAction struct{}

type SetFiltersAction struct{ Filters model.FilterSet }

type ClearFiltersAction struct{}

func (SetSearchDataAction) searchAction() {}
func (ClearSearchDataAction) searchAction() {}
func (SetSearchLoadingAction) searchAction() {}
func (SetResultsAction) searchAction() {}
func (SetSearchErrorAction) searchAction() {}
func (SetDraftAction) searchAction() {}
func (ClearDraftAction) searchAction() {}
func (SetFiltersAction) searchAction() {}
func (ClearFiltersAction) searchAction() {}
