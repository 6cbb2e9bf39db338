package handler

import (
	"remontkz/internal/usecase"
)

var (
	authHandler    *AuthHandler
	listingHandler *ListingHandler
	requestHandler *RequestHandler
	messageHandler *MessageHandler
	reviewHandler  *ReviewHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	listingUseCase *usecase.ListingUseCase,
	requestUseCase *usecase.RequestUseCase,
	conversationUseCase *usecase.ConversationUseCase,
	reviewUseCase *usecase.ReviewUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	listingHandler = NewListingHandler(listingUseCase)
	requestHandler = NewRequestHandler(requestUseCase)
	messageHandler = NewMessageHandler(conversationUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetRequestHandler() *RequestHandler {
	return requestHandler
}

func GetMessageHandler() *MessageHandler {
	return messageHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}
