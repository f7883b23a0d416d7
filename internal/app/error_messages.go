// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// vitrine server handlers and middleware.
//
// All Msg* constants are the French messages written into the
// {"error": "..."} body of failed API calls. The public site and the admin
// client display them as is.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Données JSON invalides"

	// MsgInvalidDataProvided is returned when a field is missing or fails
	// validation and no more specific message applies.
	MsgInvalidDataProvided = "Données invalides"

	// MsgTitleRequired is returned when a record is saved without a title.
	MsgTitleRequired = "Le titre est requis"

	// MsgMediaURLRequired is returned when a publication has no file, video
	// or podcast URL.
	MsgMediaURLRequired = "Un fichier, une vidéo ou un podcast est requis"

	MsgIDRequired = "L'identifiant est requis"

	MsgInvalidType = "Type invalide"

	MsgInvalidDate = "Date invalide (format attendu : AAAA-MM-JJ)"

	MsgFieldTooLong = "Un des champs dépasse la longueur autorisée"

	MsgVideoSourceRequired = "Une vidéo active nécessite soit une URL soit un fichier"

	// MsgContactFieldsRequired is returned when the contact form misses its
	// name, e-mail or message.
	MsgContactFieldsRequired = "Le nom, l'email et le message sont requis"

	MsgInvalidEmail = "Adresse email invalide"

	MsgNoFileProvided = "Aucun fichier fourni"

	MsgFileTypeNotAllowed = "Type de fichier non autorisé"

	MsgFileTooLarge = "Fichier trop volumineux"

	MsgUploadFailed = "Erreur lors de l'upload du fichier"

	// MsgNotFound is returned for an unknown record id or section.
	MsgNotFound = "Élément non trouvé"

	MsgPublicationNotFound = "Publication non trouvée"

	MsgNewsNotFound = "Actualité ou réalisation non trouvée"

	MsgSectionVideoNotFound = "Vidéo de section non trouvée"

	MsgContactNotFound = "Message de contact non trouvé"

	MsgUnknownContentType = "Type de contenu inconnu"

	// MsgPreconditionFailed is returned when If-Match no longer matches the
	// stored document.
	MsgPreconditionFailed = "Le contenu a été modifié entre-temps, rechargez-le avant d'enregistrer"

	// MsgInvalidCredentials is returned by login for a wrong e-mail or
	// password.
	MsgInvalidCredentials = "Email ou mot de passe incorrect"

	// MsgUnauthorized is returned when an admin route is called without a
	// valid session.
	MsgUnauthorized = "Non autorisé"

	MsgSessionExpired = "Session expirée, veuillez vous reconnecter"

	// MsgBackendUnavailable is returned when the section-video service cannot
	// be reached or answers with a server error.
	MsgBackendUnavailable = "Le service vidéo est indisponible"

	MsgMailNotSent = "La réponse n'a pas pu être envoyée par email"

	MsgSaveFailed = "Erreur lors de la sauvegarde"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Erreur interne du serveur"

	MsgMethodNotAllowed = "Méthode non autorisée"

	MsgRouteNotFound = "Route non trouvée"
)
