// Package workflow - ядро переходов состояний портала.
//
// Каждая сущность (вакансия, отклик, тикет, запрос транскрипта, решение
// челленджа) описывается декларативной таблицей правил: из какого статуса,
// какой командой, в какой статус, какая роль имеет право и требуется ли
// непустой текст причины. Сервисы вызывают Apply ДО записи в БД:
// неуспешный Apply не мутирует сущность.
package workflow

import (
	"sort"
	"strings"

	"recruitportal/internal/models"
	"recruitportal/pkg/apperrors"
)

type State string
type Command string

// Rule - одно разрешенное ребро графа переходов
type Rule struct {
	From           State
	Command        Command
	To             State
	Role           models.UserRole
	RequiresReason bool
}

type transitionKey struct {
	from State
	cmd  Command
}

// Machine - таблица переходов одной сущности
type Machine struct {
	entity string
	rules  map[transitionKey]Rule
}

// NewMachine строит машину из списка правил.
// Дубликат пары (from, command) - ошибка программиста, паникуем при старте.
func NewMachine(entity string, rules ...Rule) *Machine {
	m := &Machine{
		entity: entity,
		rules:  make(map[transitionKey]Rule, len(rules)),
	}
	for _, r := range rules {
		key := transitionKey{from: r.From, cmd: r.Command}
		if _, exists := m.rules[key]; exists {
			panic("workflow: duplicate rule " + entity + ": " + string(r.From) + "/" + string(r.Command))
		}
		m.rules[key] = r
	}
	return m
}

// Entity возвращает имя сущности (используется в audit log и ошибках)
func (m *Machine) Entity() string {
	return m.entity
}

// Apply проверяет переход и возвращает целевой статус.
// Порядок проверок важен: сначала существование ребра, затем роль,
// затем обязательность причины. Ни одна из ошибок не раскрывает
// клиенту требуемую роль.
func (m *Machine) Apply(from State, cmd Command, actorRole models.UserRole, reason string) (State, error) {
	rule, ok := m.rules[transitionKey{from: from, cmd: cmd}]
	if !ok {
		return "", apperrors.ErrInvalidTransition(
			m.entity,
			"Operation '"+string(cmd)+"' is not allowed from status '"+string(from)+"'",
		)
	}

	if actorRole != rule.Role {
		return "", apperrors.ErrUnauthorized
	}

	if rule.RequiresReason && strings.TrimSpace(reason) == "" {
		return "", apperrors.ErrReasonRequired(m.entity)
	}

	return rule.To, nil
}

// Commands возвращает команды, доступные роли из данного статуса.
// Для терминальных статусов список пуст. Порядок алфавитный,
// чтобы ответы API были стабильными.
func (m *Machine) Commands(from State, actorRole models.UserRole) []Command {
	var cmds []Command
	for key, rule := range m.rules {
		if key.from == from && rule.Role == actorRole {
			cmds = append(cmds, key.cmd)
		}
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i] < cmds[j] })
	return cmds
}
